package validation

import (
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Required(t *testing.T) {
	v := New()
	got := v.Required("name", "  Go  ")
	assert.Equal(t, "Go", got)
	assert.NoError(t, v.Err())

	v = New()
	v.Required("name", "   ")
	err := v.Err()
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "name", appErr.Fields[0].Field)
}

func TestValidator_CollectsAllViolationsInOrder(t *testing.T) {
	v := New()
	v.Required("title", "")
	v.Required("description", "")
	v.URL("link", "not-a-url")

	err := v.Err()
	require.Error(t, err)
	fields := err.(*models.AppError).Fields
	require.Len(t, fields, 3)
	assert.Equal(t, "title", fields[0].Field)
	assert.Equal(t, "description", fields[1].Field)
	assert.Equal(t, "link", fields[2].Field)
}

func TestValidator_MinLenSkipsEmpty(t *testing.T) {
	v := New()
	v.MinLen("name", "", 3)
	assert.NoError(t, v.Err())

	v = New()
	v.MinLen("name", "ab", 3)
	assert.Error(t, v.Err())
}

func TestValidator_LenCountsRunes(t *testing.T) {
	v := New()
	v.MinLen("name", "héé", 3)
	assert.NoError(t, v.Err())

	v = New()
	v.MaxLen("name", "ééé", 3)
	assert.NoError(t, v.Err())
}

func TestValidator_URL(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"https://example.com/path", true},
		{"http://example.com", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"https://", false},
		{"", false},
	}
	for _, tc := range cases {
		v := New()
		v.URL("url", tc.value)
		if tc.valid {
			assert.NoError(t, v.Err(), tc.value)
		} else {
			assert.Error(t, v.Err(), tc.value)
		}
	}
}

func TestValidator_Email(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"jordan@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"jordan@", false},
		{"Jordan <jordan@example.com>", false},
	}
	for _, tc := range cases {
		v := New()
		v.Email("email", tc.value)
		if tc.valid {
			assert.NoError(t, v.Err(), tc.value)
		} else {
			assert.Error(t, v.Err(), tc.value)
		}
	}
}

func TestValidator_EmailSkipsEmpty(t *testing.T) {
	v := New()
	v.Email("email", "")
	assert.NoError(t, v.Err())
}

func TestValidator_OptionalURLAllowsEmpty(t *testing.T) {
	v := New()
	v.OptionalURL("link", "")
	assert.NoError(t, v.Err())
}

func TestValidator_Date(t *testing.T) {
	v := New()
	parsed := v.Date("startDate", "2022-03-15")
	require.NoError(t, v.Err())
	assert.Equal(t, 2022, parsed.Year())

	v = New()
	v.Date("startDate", "15/03/2022")
	assert.Error(t, v.Err())
}

func TestValidator_UUIDs(t *testing.T) {
	v := New()
	v.UUIDs("skills", []string{"8cbd0a52-6aeb-4bbf-9b51-13971e1bb61f"})
	assert.NoError(t, v.Err())

	v = New()
	v.UUIDs("skills", []string{"8cbd0a52-6aeb-4bbf-9b51-13971e1bb61f", "nope"})
	err := v.Err()
	require.Error(t, err)
	assert.Len(t, err.(*models.AppError).Fields, 1)
}

func TestValidator_File(t *testing.T) {
	pdf := func(size int) *models.FileUpload {
		return &models.FileUpload{Filename: "cv.pdf", ContentType: "application/pdf", Content: make([]byte, size)}
	}
	rules := FileRules{Required: true, MaxBytes: 5 * 1024 * 1024, Types: []string{"application/pdf"}}

	t.Run("missing required file", func(t *testing.T) {
		v := New()
		v.File("cv", nil, rules)
		assert.Error(t, v.Err())
	})

	t.Run("missing optional file skips rules", func(t *testing.T) {
		v := New()
		v.File("cv", nil, FileRules{MaxBytes: 1, Types: []string{"application/pdf"}})
		assert.NoError(t, v.Err())
	})

	t.Run("exactly at limit passes", func(t *testing.T) {
		v := New()
		v.File("cv", pdf(5*1024*1024), rules)
		assert.NoError(t, v.Err())
	})

	t.Run("one byte over fails", func(t *testing.T) {
		v := New()
		v.File("cv", pdf(5*1024*1024+1), rules)
		err := v.Err()
		require.Error(t, err)
		assert.Contains(t, err.(*models.AppError).Fields[0].Message, "5MB")
	})

	t.Run("wrong content type", func(t *testing.T) {
		v := New()
		v.File("cv", &models.FileUpload{Filename: "cv.txt", ContentType: "text/plain", Content: []byte("x")}, rules)
		assert.Error(t, v.Err())
	})

	t.Run("content type parameters ignored", func(t *testing.T) {
		v := New()
		v.File("cv", &models.FileUpload{Filename: "cv.pdf", ContentType: "Application/PDF; charset=binary", Content: []byte("x")}, rules)
		assert.NoError(t, v.Err())
	})

	t.Run("type prefix", func(t *testing.T) {
		v := New()
		v.File("photo", &models.FileUpload{Filename: "p.webp", ContentType: "image/webp", Content: []byte("x")},
			FileRules{TypePrefix: "image/"})
		assert.NoError(t, v.Err())

		v = New()
		v.File("photo", &models.FileUpload{Filename: "p.txt", ContentType: "text/plain", Content: []byte("x")},
			FileRules{TypePrefix: "image/"})
		assert.Error(t, v.Err())
	})
}
