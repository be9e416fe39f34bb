package memorial

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	in := `[
	  {"nombre":"Ana","fecha":"12/03/1977","lugar":"Quilmes","apodo":"La Flaca","dni":"1",
	   "profesion":"Docente","historia":"a\nb","imagen":"img/a.jpg","lat":-34.72,"lng":-58.25},
	  {"nombre":"Beto","fecha":"sin datos","lugar":"Bernal","apodo":"","dni":"2","lat":-34.7,"lng":-58.28}
	]`
	d, err := DecodeJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, d, 2)
	assert.Equal(t, "Ana", d[0].Name)
	assert.Equal(t, "a\nb", d[0].Biography)
	assert.Equal(t, -34.72, d[0].Latitude)
	assert.Empty(t, d[1].Nationality)
}

func TestDecodeJSONErrors(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"nombre":`))
	assert.Error(t, err)

	d, err := DecodeJSON(strings.NewReader(`null`))
	require.NoError(t, err)
	assert.NotNil(t, d)
	assert.Empty(t, d)
}

func TestDecodeCSV(t *testing.T) {
	in := "Nombre,Fecha,Lugar,Lat,Lng,Historia,Extra\n" +
		"Ana,1977,Quilmes,\"-34,72\",-58.25,uno\\ndos,x\n" +
		"Beto,s/f,Bernal,,,,\n"
	d, err := DecodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, d, 2)
	assert.Equal(t, -34.72, d[0].Latitude)
	assert.Equal(t, "uno\ndos", d[0].Biography)
	assert.Equal(t, "s/f", d[1].DateText)
	assert.Zero(t, d[1].Longitude)
}

func TestDecodeCSVBadCoordinate(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader("name,lat\nAna,north\n"))
	assert.ErrorContains(t, err, "row 2")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		p := filepath.Join(dir, "datos.json")
		require.NoError(t, os.WriteFile(p, []byte(`[{"nombre":"Ana","fecha":"1976"}]`), 0o600))
		d, err := LoadFile(p)
		require.NoError(t, err)
		assert.Len(t, d, 1)
	})

	t.Run("missing file is a startup failure", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, ErrStartupDependencyMissing)
	})

	t.Run("empty path is a startup failure", func(t *testing.T) {
		_, err := LoadFile("")
		assert.ErrorIs(t, err, ErrStartupDependencyMissing)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "datos.js"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
