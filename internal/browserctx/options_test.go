package browserctx_test

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgo124578/sample-project/internal/browserctx"
)

func TestMerge_OverrideReplacesOnlySetOptions(t *testing.T) {
	base := playwright.BrowserNewContextOptions{
		Viewport:  &playwright.Size{Width: 800, Height: 600},
		Locale:    playwright.String("en-US"),
		UserAgent: playwright.String("base-agent"),
	}
	override := playwright.BrowserNewContextOptions{
		Locale:     playwright.String("ja-JP"),
		TimezoneId: playwright.String("Asia/Tokyo"),
	}

	merged := browserctx.Merge(base, override)

	require.NotNil(t, merged.Viewport)
	assert.Equal(t, 800, merged.Viewport.Width)
	assert.Equal(t, "ja-JP", *merged.Locale)
	assert.Equal(t, "Asia/Tokyo", *merged.TimezoneId)
	assert.Equal(t, "base-agent", *merged.UserAgent)

	assert.Equal(t, "en-US", *base.Locale, "base must not be modified")
}

func TestMerge_EmptyOverrideKeepsBase(t *testing.T) {
	base := browserctx.Defaults()

	merged := browserctx.Merge(base, playwright.BrowserNewContextOptions{})

	assert.Equal(t, base, merged)
}

func TestDefaultSession_Options(t *testing.T) {
	opts := browserctx.Merge(browserctx.Defaults(), browserctx.DefaultSession().Options())

	require.NotNil(t, opts.Viewport)
	assert.Equal(t, playwright.Size{Width: 1280, Height: 720}, *opts.Viewport)
	assert.Equal(t, "ja-JP", *opts.Locale)
	assert.Equal(t, "Asia/Tokyo", *opts.TimezoneId)
	assert.True(t, *opts.JavaScriptEnabled)
}

func TestSession_Options_EmptyValuesUnset(t *testing.T) {
	opts := browserctx.Session{}.Options()

	assert.Nil(t, opts.Viewport)
	assert.Nil(t, opts.Locale)
	assert.Nil(t, opts.TimezoneId)
}

func TestParseViewport(t *testing.T) {
	tests := []struct {
		input   string
		want    playwright.Size
		wantErr bool
	}{
		{input: "1280x720", want: playwright.Size{Width: 1280, Height: 720}},
		{input: " 375X667 ", want: playwright.Size{Width: 375, Height: 667}},
		{input: "1280", wantErr: true},
		{input: "0x720", wantErr: true},
		{input: "wide x tall", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := browserctx.ParseViewport(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, browserctx.ErrInvalidViewport)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
