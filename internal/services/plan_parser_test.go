package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGeneratedText(t *testing.T) {
	t.Run("strips markup and unifies structure", func(t *testing.T) {
		raw := "**Day 1:** Visit the fort\r\n\r\n\r\n• Eat lunch\r\n"
		got := normalizeGeneratedText(raw)

		assert.NotContains(t, got, "*")
		assert.NotContains(t, got, "\r")
		assert.NotContains(t, got, "•")
		assert.Contains(t, got, "- Eat lunch")
		assert.NotContains(t, got, "\n\n\n")
	})

	t.Run("idempotent", func(t *testing.T) {
		raw := "**Day 1:** Morning walk.\r\n\r\n\r\n- Museum visit\n\nDay 2: Beach."
		once := normalizeGeneratedText(raw)
		twice := normalizeGeneratedText(once)
		assert.Equal(t, once, twice)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", normalizeGeneratedText(""))
	})
}

func TestSplitDayMarkers(t *testing.T) {
	t.Run("no markers returns nil", func(t *testing.T) {
		assert.Nil(t, splitDayMarkers("just a plain paragraph with no headings"))
	})

	t.Run("markers split in document order", func(t *testing.T) {
		text := "Day 1: Visit museum.\nDay 2: Relax at the beach."
		segments := splitDayMarkers(text)
		require.Len(t, segments, 2)
		assert.Equal(t, 1, segments[0].day)
		assert.Contains(t, segments[0].body, "museum")
		assert.Equal(t, 2, segments[1].day)
		assert.Contains(t, segments[1].body, "beach")
	})

	t.Run("case insensitive and separator variants", func(t *testing.T) {
		text := "day 1) Old town.\nDAY 2 - Boat trip."
		segments := splitDayMarkers(text)
		require.Len(t, segments, 2)
		assert.Contains(t, segments[0].body, "Old town")
		assert.Contains(t, segments[1].body, "Boat trip")
	})

	t.Run("marker numbers are extracted", func(t *testing.T) {
		text := "Day 7: Something.\nDay 12: Something else."
		segments := splitDayMarkers(text)
		require.Len(t, segments, 2)
		assert.Equal(t, 7, segments[0].day)
		assert.Equal(t, 12, segments[1].day)
	})

	t.Run("preamble before first marker is dropped", func(t *testing.T) {
		text := "Here is your trip!\nDay 1: Arrival."
		segments := splitDayMarkers(text)
		require.Len(t, segments, 1)
		assert.Equal(t, "Arrival.", segments[0].body)
	})
}

func TestFlattenDayBody(t *testing.T) {
	body := "Arrive at noon.\n- Check in\n- Walk around\nDinner at eight."
	got := flattenDayBody(body)
	assert.Equal(t, "Arrive at noon. • Check in • Walk around Dinner at eight.", got)
}

func TestSplitSentences(t *testing.T) {
	t.Run("splits on terminal punctuation", func(t *testing.T) {
		got := splitSentences("A. B! C? D.")
		assert.Equal(t, []string{"A.", "B!", "C?", "D."}, got)
	})

	t.Run("keeps trailing fragment without punctuation", func(t *testing.T) {
		got := splitSentences("First one. and then some more")
		assert.Equal(t, []string{"First one.", "and then some more"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, splitSentences(""))
	})
}

func TestBuildDayPlans(t *testing.T) {
	t.Run("marker based segmentation", func(t *testing.T) {
		plan := BuildDayPlans("Day 1: Visit museum. Day 2: Relax at the beach.", 2)
		require.Len(t, plan, 2)
		assert.Equal(t, 1, plan[0].Day)
		assert.Contains(t, plan[0].Summary, "museum")
		assert.Equal(t, 2, plan[1].Day)
		assert.Contains(t, plan[1].Summary, "beach")
	})

	t.Run("sentence fallback one per day", func(t *testing.T) {
		plan := BuildDayPlans("A. B. C.", 3)
		require.Len(t, plan, 3)
		assert.Equal(t, "A.", plan[0].Summary)
		assert.Equal(t, "B.", plan[1].Summary)
		assert.Equal(t, "C.", plan[2].Summary)
	})

	t.Run("fallback pads trailing days when fewer sentences", func(t *testing.T) {
		plan := BuildDayPlans("Only one sentence here.", 3)
		require.Len(t, plan, 3)
		assert.Equal(t, "Only one sentence here.", plan[0].Summary)
		assert.Equal(t, "", plan[1].Summary)
		assert.Equal(t, "", plan[2].Summary)
	})

	t.Run("fallback chunks excess sentences without loss", func(t *testing.T) {
		sentences := []string{"S1.", "S2.", "S3.", "S4.", "S5.", "S6.", "S7."}
		plan := BuildDayPlans(strings.Join(sentences, " "), 3)
		require.Len(t, plan, 3)

		// ceil(7/3) == 3 sentences per chunk
		assert.Equal(t, "S1. S2. S3.", plan[0].Summary)
		assert.Equal(t, "S4. S5. S6.", plan[1].Summary)
		assert.Equal(t, "S7.", plan[2].Summary)

		joined := strings.Join([]string{plan[0].Summary, plan[1].Summary, plan[2].Summary}, " ")
		for _, s := range sentences {
			assert.Equal(t, 1, strings.Count(joined, s))
		}
	})

	t.Run("empty generation yields empty summaries", func(t *testing.T) {
		plan := BuildDayPlans("", 3)
		require.Len(t, plan, 3)
		for i, day := range plan {
			assert.Equal(t, i+1, day.Day)
			assert.Equal(t, "", day.Summary)
			assert.NotNil(t, day.Places)
			assert.Empty(t, day.Places)
		}
	})

	t.Run("pads when fewer markers than requested days", func(t *testing.T) {
		plan := BuildDayPlans("Day 1: Museum.\nDay 2: Beach.", 4)
		require.Len(t, plan, 4)
		assert.Equal(t, "", plan[2].Summary)
		assert.Equal(t, "", plan[3].Summary)
		assert.Equal(t, 4, plan[3].Day)
	})

	t.Run("truncates when more markers than requested days", func(t *testing.T) {
		plan := BuildDayPlans("Day 1: A.\nDay 2: B.\nDay 3: C.\nDay 4: D.", 2)
		require.Len(t, plan, 2)
		assert.Contains(t, plan[0].Summary, "A")
		assert.Contains(t, plan[1].Summary, "B")
	})

	t.Run("renumbers out-of-range marker labels sequentially", func(t *testing.T) {
		plan := BuildDayPlans("Day 5: First.\nDay 9: Second.\nDay 2: Third.", 3)
		require.Len(t, plan, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{plan[0].Day, plan[1].Day, plan[2].Day})
		assert.Contains(t, plan[0].Summary, "First")
		assert.Contains(t, plan[1].Summary, "Second")
		assert.Contains(t, plan[2].Summary, "Third")
	})

	t.Run("inline bullets inside a day", func(t *testing.T) {
		plan := BuildDayPlans("Day 1: Arrival\n- Check in\n- City walk", 1)
		require.Len(t, plan, 1)
		assert.Equal(t, "Arrival • Check in • City walk", plan[0].Summary)
	})
}
