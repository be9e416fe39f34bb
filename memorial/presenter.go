package memorial

import "strings"

// Slot names a field or section of the detail surface.
type Slot string

const (
	SlotName          Slot = "name"
	SlotSubtitle      Slot = "subtitle" // profession, shown under the name
	SlotNickname      Slot = "nickname"
	SlotNationalID    Slot = "national-id"
	SlotDate          Slot = "date"
	SlotNationality   Slot = "nationality"
	SlotProfession    Slot = "profession"
	SlotLocation      Slot = "location"
	SlotBiography     Slot = "biography" // section
	SlotBiographyText Slot = "biography-text"
	SlotPhoto         Slot = "photo"
	SlotPhotoAlt      Slot = "photo-alt"
)

// NoDataPlaceholder replaces a missing nationality.
const NoDataPlaceholder = "Sin datos"

// DetailSurface is the modal a record is rendered into.
type DetailSurface interface {
	SetField(slot Slot, value string)
	SetLines(slot Slot, lines []string)
	SetSectionVisible(slot Slot, visible bool)
	SetModalOpen(open bool)
	SetScrollLocked(locked bool)
}

// Presenter renders records into a DetailSurface.
type Presenter struct {
	dataset  Dataset
	surface  DetailSurface
	open     bool
	current  int
	imageRef string
}

func NewPresenter(d Dataset, surface DetailSurface) *Presenter {
	return &Presenter{dataset: d, surface: surface, current: -1}
}

// SetDataset points the presenter at a reloaded dataset and closes any open record.
func (p *Presenter) SetDataset(d Dataset) {
	if p.open {
		p.Close()
	}
	p.dataset = d
}

// PresentIndex presents Dataset[i]. An out-of-range index does nothing.
func (p *Presenter) PresentIndex(i int) bool {
	rec, ok := p.dataset.At(i)
	if !ok {
		return false
	}
	p.Present(rec)
	p.current = i
	return true
}

// Present fills every slot of the surface from rec and opens the modal.
func (p *Presenter) Present(rec Record) {
	if p.surface == nil {
		return
	}
	s := p.surface
	p.current = -1

	s.SetField(SlotName, rec.Name)
	s.SetField(SlotSubtitle, rec.Profession)
	s.SetField(SlotNickname, rec.Nickname)
	s.SetField(SlotNationalID, rec.NationalID)
	s.SetField(SlotDate, rec.DateText)
	nationality := rec.Nationality
	if strings.TrimSpace(nationality) == "" {
		nationality = NoDataPlaceholder
	}
	s.SetField(SlotNationality, nationality)
	s.SetField(SlotProfession, rec.Profession)
	s.SetField(SlotLocation, rec.Location)

	if rec.HasBiography() {
		s.SetLines(SlotBiographyText, strings.Split(rec.Biography, "\n"))
		s.SetSectionVisible(SlotBiography, true)
	} else {
		s.SetSectionVisible(SlotBiography, false)
	}

	if rec.HasImage() {
		p.imageRef = rec.ImageRef
		s.SetField(SlotPhoto, rec.ImageRef)
		s.SetField(SlotPhotoAlt, rec.Name)
		s.SetSectionVisible(SlotPhoto, true)
	} else {
		p.imageRef = ""
		s.SetField(SlotPhoto, "")
		s.SetSectionVisible(SlotPhoto, false)
	}

	p.open = true
	s.SetModalOpen(true)
	s.SetScrollLocked(true)
}

// ImageFailed hides the image after ref failed to load. Failures for a reference that
// is no longer on display are ignored.
func (p *Presenter) ImageFailed(ref string) {
	if p.surface == nil || p.imageRef == "" || ref != p.imageRef {
		return
	}
	p.imageRef = ""
	p.surface.SetSectionVisible(SlotPhoto, false)
	p.surface.SetField(SlotPhoto, "")
}

// Close hides the modal and releases the background scroll.
func (p *Presenter) Close() {
	if p.surface == nil {
		return
	}
	p.open = false
	p.current = -1
	p.surface.SetModalOpen(false)
	p.surface.SetScrollLocked(false)
}

func (p *Presenter) IsOpen() bool { return p.open }

// Current returns the dataset index on display, or -1.
func (p *Presenter) Current() int { return p.current }

// ImageRef returns the image reference currently shown, if any.
func (p *Presenter) ImageRef() string { return p.imageRef }
