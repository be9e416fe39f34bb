package memorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecord() Record {
	return Record{
		Name:        "Ana Pérez",
		DateText:    "12/03/1977",
		Location:    "Quilmes",
		Nickname:    "La Flaca",
		NationalID:  "10.123.456",
		Nationality: "Argentina",
		Profession:  "Docente",
		Biography:   "a\nb",
		ImageRef:    "img/ana.jpg",
	}
}

func TestPresenterFillsEverySlot(t *testing.T) {
	surface := newFakeDetail()
	p := NewPresenter(Dataset{fullRecord()}, surface)

	require.True(t, p.PresentIndex(0))
	assert.Equal(t, "Ana Pérez", surface.fields[SlotName])
	assert.Equal(t, "Docente", surface.fields[SlotSubtitle])
	assert.Equal(t, "Docente", surface.fields[SlotProfession])
	assert.Equal(t, "La Flaca", surface.fields[SlotNickname])
	assert.Equal(t, "10.123.456", surface.fields[SlotNationalID])
	assert.Equal(t, "12/03/1977", surface.fields[SlotDate])
	assert.Equal(t, "Argentina", surface.fields[SlotNationality])
	assert.Equal(t, "Quilmes", surface.fields[SlotLocation])
	assert.Equal(t, "img/ana.jpg", surface.fields[SlotPhoto])
	assert.Equal(t, "Ana Pérez", surface.fields[SlotPhotoAlt])
	assert.True(t, surface.sections[SlotPhoto])
	assert.True(t, surface.open)
	assert.True(t, surface.locked)
	assert.True(t, p.IsOpen())
	assert.Equal(t, 0, p.Current())
}

func TestPresenterBiography(t *testing.T) {
	t.Run("multi line shows with a break", func(t *testing.T) {
		surface := newFakeDetail()
		NewPresenter(nil, surface).Present(Record{Biography: "a\nb"})
		assert.True(t, surface.sections[SlotBiography])
		assert.Equal(t, []string{"a", "b"}, surface.lines[SlotBiographyText])
	})
	t.Run("whitespace only hides the section", func(t *testing.T) {
		surface := newFakeDetail()
		NewPresenter(nil, surface).Present(Record{Biography: "  "})
		assert.False(t, surface.sections[SlotBiography])
	})
}

func TestPresenterNationalityPlaceholder(t *testing.T) {
	surface := newFakeDetail()
	NewPresenter(nil, surface).Present(Record{Nationality: ""})
	assert.Equal(t, NoDataPlaceholder, surface.fields[SlotNationality])
}

func TestPresenterImage(t *testing.T) {
	t.Run("blank reference hides the photo", func(t *testing.T) {
		surface := newFakeDetail()
		NewPresenter(nil, surface).Present(Record{ImageRef: "   "})
		assert.False(t, surface.sections[SlotPhoto])
		assert.Empty(t, surface.fields[SlotPhoto])
	})

	t.Run("load failure hides and clears", func(t *testing.T) {
		surface := newFakeDetail()
		p := NewPresenter(Dataset{fullRecord()}, surface)
		p.PresentIndex(0)
		p.ImageFailed("img/ana.jpg")
		assert.False(t, surface.sections[SlotPhoto])
		assert.Empty(t, surface.fields[SlotPhoto])
		assert.Empty(t, p.ImageRef())
		assert.True(t, surface.open, "the modal stays open")
	})

	t.Run("stale failure is ignored", func(t *testing.T) {
		surface := newFakeDetail()
		p := NewPresenter(Dataset{fullRecord()}, surface)
		p.PresentIndex(0)
		p.ImageFailed("img/other.jpg")
		assert.True(t, surface.sections[SlotPhoto])
		assert.Equal(t, "img/ana.jpg", surface.fields[SlotPhoto])
	})
}

func TestPresenterOutOfRange(t *testing.T) {
	surface := newFakeDetail()
	p := NewPresenter(Dataset{fullRecord()}, surface)

	assert.NotPanics(t, func() {
		assert.False(t, p.PresentIndex(-1))
		assert.False(t, p.PresentIndex(1))
	})
	assert.Zero(t, surface.calls)
	assert.False(t, p.IsOpen())
}

func TestPresenterNilSurface(t *testing.T) {
	p := NewPresenter(Dataset{fullRecord()}, nil)
	assert.NotPanics(t, func() {
		p.PresentIndex(0)
		p.ImageFailed("img/ana.jpg")
		p.Close()
	})
}

func TestPresenterClose(t *testing.T) {
	surface := newFakeDetail()
	p := NewPresenter(Dataset{fullRecord()}, surface)
	p.PresentIndex(0)
	p.Close()
	assert.False(t, surface.open)
	assert.False(t, surface.locked)
	assert.False(t, p.IsOpen())
	assert.Equal(t, -1, p.Current())
}
