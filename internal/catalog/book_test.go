package catalog_test

import (
	"shelf/internal/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook_Defaults(t *testing.T) {
	t.Run("physical book starts available", func(t *testing.T) {
		b := catalog.NewPhysical("Dune", "Herbert", 1965)

		assert.Equal(t, catalog.StatusAvailable, b.Status)
		assert.Equal(t, catalog.KindPhysical, b.Kind)
		assert.Empty(t, b.Format)
		assert.False(t, b.IsDigital())
	})

	t.Run("digital book carries its format", func(t *testing.T) {
		b := catalog.NewDigital("Foundation", "Asimov", 1951, "ePub")

		assert.Equal(t, catalog.StatusAvailable, b.Status)
		assert.Equal(t, catalog.KindDigital, b.Kind)
		assert.Equal(t, "ePub", b.Format)
		assert.True(t, b.IsDigital())
	})
}

func TestBook_SetStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  catalog.Status
		want    catalog.Status
		wantErr bool
	}{
		{name: "loaned is accepted", status: catalog.StatusLoaned, want: catalog.StatusLoaned},
		{name: "available is accepted", status: catalog.StatusAvailable, want: catalog.StatusAvailable},
		{name: "unknown value is rejected", status: "lost", want: catalog.StatusAvailable, wantErr: true},
		{name: "empty value is rejected", status: "", want: catalog.StatusAvailable, wantErr: true},
		{name: "case matters", status: "Loaned", want: catalog.StatusAvailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := catalog.NewPhysical("Dune", "Herbert", 1965)

			err := b.SetStatus(tt.status)

			if tt.wantErr {
				assert.ErrorIs(t, err, catalog.ErrInvalidStatus)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, b.Status)
		})
	}

	t.Run("rejected value keeps a loaned status", func(t *testing.T) {
		b := catalog.NewPhysical("Dune", "Herbert", 1965)
		require.NoError(t, b.SetStatus(catalog.StatusLoaned))

		err := b.SetStatus("borrowed")

		assert.ErrorIs(t, err, catalog.ErrInvalidStatus)
		assert.Equal(t, catalog.StatusLoaned, b.Status)
	})
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  catalog.Status
	}{
		{"available", catalog.StatusAvailable},
		{"loaned", catalog.StatusLoaned},
		{"LOANED", catalog.StatusLoaned},
		{" available ", catalog.StatusAvailable},
		{"disponible", catalog.StatusAvailable},
		{"prestado", catalog.StatusLoaned},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := catalog.ParseStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown value returns ErrInvalidStatus", func(t *testing.T) {
		_, err := catalog.ParseStatus("missing")
		assert.ErrorIs(t, err, catalog.ErrInvalidStatus)
		assert.Contains(t, err.Error(), "missing")
	})
}

func TestBook_SetFormat(t *testing.T) {
	t.Run("digital book accepts any format", func(t *testing.T) {
		b := catalog.NewDigital("Foundation", "Asimov", 1951, "ePub")

		require.NoError(t, b.SetFormat("MOBI"))

		assert.Equal(t, "MOBI", b.Format)
	})

	t.Run("physical book rejects a format", func(t *testing.T) {
		b := catalog.NewPhysical("Dune", "Herbert", 1965)

		err := b.SetFormat("PDF")

		assert.ErrorIs(t, err, catalog.ErrNotDigital)
		assert.Empty(t, b.Format)
	})
}

func TestBook_String(t *testing.T) {
	t.Run("physical", func(t *testing.T) {
		b := catalog.NewPhysical("Dune", "Herbert", 1965)
		assert.Equal(t, "Dune, Herbert, 1965, available", b.String())
	})

	t.Run("digital appends format", func(t *testing.T) {
		b := catalog.NewDigital("Foundation", "Asimov", 1951, "ePub")
		require.NoError(t, b.SetStatus(catalog.StatusLoaned))
		assert.Equal(t, "Foundation, Asimov, 1951, loaned, ePub", b.String())
	})
}
