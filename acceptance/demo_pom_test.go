//go:build acceptance
// +build acceptance

package acceptance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgo124578/sample-project/pages"
)

func TestDemoPageObject_IncrementCounter(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		// Arrange
		demo := newDemoPage(f.Page)
		require.NoError(t, demo.Goto())

		// Act
		require.NoError(t, demo.IncrementCounter(3))

		// Assert
		require.NoError(t, demo.ExpectCounter(3))
	})
}

func TestDemoPageObject_ResetCounter(t *testing.T) {
	t.Parallel()

	WithDemoPageObject(t, func(t *testing.T, demo *pages.DemoPage) {
		require.NoError(t, demo.IncrementCounter(10))
		require.NoError(t, demo.ExpectCounter(10))

		require.NoError(t, demo.ResetCounter())

		require.NoError(t, demo.ExpectCounter(0))
		value, err := demo.CounterValue()
		require.NoError(t, err)
		assert.Equal(t, "0", value)
	})
}

func TestDemoPageObject_ColorSelectionPreservesCounter(t *testing.T) {
	t.Parallel()

	WithDemoPageObject(t, func(t *testing.T, demo *pages.DemoPage) {
		require.NoError(t, demo.IncrementCounter(5))
		require.NoError(t, demo.ExpectCounter(5))

		color, err := pages.ParseColor("赤")
		require.NoError(t, err)
		require.NoError(t, demo.SelectColor(color))

		require.NoError(t, demo.ExpectURLParam("color", "red"))
		require.NoError(t, demo.ExpectCounter(5))
		assert.Contains(t, demo.URL(), "color=red")
	})
}

func TestDemoPageObject_IncrementVariousTimes(t *testing.T) {
	t.Parallel()

	for _, times := range []int{1, 5, 10} {
		t.Run(fmt.Sprintf("%d times", times), func(t *testing.T) {
			t.Parallel()

			WithDemoPageObject(t, func(t *testing.T, demo *pages.DemoPage) {
				require.NoError(t, demo.IncrementCounter(times))

				require.NoError(t, demo.ExpectCounter(times))
				value, err := demo.CounterValue()
				require.NoError(t, err)
				assert.Equal(t, fmt.Sprint(times), value)
			})
		})
	}
}

func TestDemoPageObject_SelectEveryColor(t *testing.T) {
	t.Parallel()

	for _, color := range pages.Colors {
		t.Run(color.String(), func(t *testing.T) {
			t.Parallel()

			WithDemoPageObject(t, func(t *testing.T, demo *pages.DemoPage) {
				require.NoError(t, demo.SelectColor(color))

				require.NoError(t, demo.ExpectURLParam("color", color.Token()))
				require.NoError(t, expect().Locator(demo.ColorButton(color)).ToHaveAttribute("aria-pressed", "true"))
			})
		})
	}
}

func TestDemoPageObject_SelectTab(t *testing.T) {
	t.Parallel()

	WithDemoPageObject(t, func(t *testing.T, demo *pages.DemoPage) {
		require.NoError(t, demo.SelectTab(pages.TabHistory))

		require.NoError(t, demo.ExpectURLParam("tab", "history"))
		require.NoError(t, expect().Locator(demo.TabPanelHeading(pages.TabHistory)).ToBeVisible())
		require.NoError(t, expect().Locator(demo.TabPanelHeading(pages.TabInfo)).ToBeHidden())
	})
}

func TestDemoPageObject_InvalidColor(t *testing.T) {
	t.Parallel()

	WithDemoPageObject(t, func(t *testing.T, demo *pages.DemoPage) {
		err := demo.SelectColor(pages.Color("黄"))

		require.ErrorIs(t, err, pages.ErrInvalidColor)
		assert.NotContains(t, demo.URL(), "color=")
	})
}

// TestDemoPageObject_FromFixture uses the Page Object injected by the fixture.
func TestDemoPageObject_FromFixture(t *testing.T) {
	t.Parallel()

	WithDemoPageObject(t, func(t *testing.T, demo *pages.DemoPage) {
		require.NoError(t, demo.IncrementCounter(3))

		require.NoError(t, demo.ExpectCounter(3))
	})
}
