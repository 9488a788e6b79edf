package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sairaj2832-star/DISHANVESHI/internal/infra/googlemaps"
	"github.com/sairaj2832-star/DISHANVESHI/internal/models/response_models"
)

var (
	emphasisRe  = regexp.MustCompile(`\*{1,3}`)
	blankRunRe  = regexp.MustCompile(`\n\s*\n+`)
	dayMarkerRe = regexp.MustCompile(`(?i)day\s*\d+[:\-)]?`)
	dayNumberRe = regexp.MustCompile(`\d+`)
	bulletRe    = regexp.MustCompile(`\n\s*-\s*`)
)

// daySegment is one not-yet-numbered chunk of itinerary text. The label
// number is a cosmetic hint from the model; the assembler renumbers by
// position.
type daySegment struct {
	day  int
	body string
}

// normalizeGeneratedText cleans raw model output: line endings, emphasis
// markers, bullet glyphs, blank-line runs. Idempotent, never fails.
func normalizeGeneratedText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = emphasisRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "•", "-")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// markerStartsSegment reports whether a "Day N" match at position start
// opens a new segment: it must sit at a line start or directly after a
// finished sentence, so phrases like "a sunny day 3 hours in" do not split.
func markerStartsSegment(text string, start int) bool {
	if start == 0 {
		return true
	}
	prev := text[start-1]
	if prev == '\n' {
		return true
	}
	if prev != ' ' && prev != '\t' {
		return false
	}
	i := start - 1
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	if i == 0 {
		return true
	}
	c := text[i-1]
	return c == '.' || c == '!' || c == '?' || c == '\n'
}

// splitDayMarkers splits normalized text on "Day N" headers. Returns nil
// when the text carries no markers, signalling the sentence fallback.
func splitDayMarkers(text string) []daySegment {
	all := dayMarkerRe.FindAllStringIndex(text, -1)
	locs := make([][]int, 0, len(all))
	for _, loc := range all {
		if markerStartsSegment(text, loc[0]) {
			locs = append(locs, loc)
		}
	}
	if len(locs) == 0 {
		return nil
	}

	segments := make([]daySegment, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		marker := text[loc[0]:loc[1]]
		body := strings.TrimSpace(text[loc[1]:end])

		dayNum := len(segments) + 1
		if m := dayNumberRe.FindString(marker); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				dayNum = n
			}
		}
		segments = append(segments, daySegment{day: dayNum, body: body})
	}
	return segments
}

// flattenDayBody converts dash items into inline bullets and collapses the
// body to a single line.
func flattenDayBody(body string) string {
	body = bulletRe.ReplaceAllString(body, " • ")
	body = strings.ReplaceAll(body, "\n", " ")
	return strings.Join(strings.Fields(body), " ")
}

// splitSentences splits after sentence-terminal punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		j := i + 1
		for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\n') {
			j++
		}
		if j > i+1 {
			sentences = append(sentences, text[start:i+1])
			start = j
			i = j - 1
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// sentenceFallback distributes sentences over the requested days when no day
// markers exist. With more sentences than days, contiguous chunks of
// ceil(count/days) sentences share a day; no sentence is dropped or reused.
func sentenceFallback(text string, days int) []response_models.ItineraryDay {
	sentences := splitSentences(text)
	plan := make([]response_models.ItineraryDay, 0, days)

	if len(sentences) <= days {
		for i := 0; i < days; i++ {
			summary := ""
			if i < len(sentences) {
				summary = strings.TrimSpace(sentences[i])
			}
			plan = append(plan, newDayPlan(i+1, summary))
		}
		return plan
	}

	chunkSize := (len(sentences) + days - 1) / days
	for i := 0; i < days; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if start > len(sentences) {
			start = len(sentences)
		}
		if end > len(sentences) {
			end = len(sentences)
		}

		parts := make([]string, 0, end-start)
		for _, s := range sentences[start:end] {
			parts = append(parts, strings.TrimSpace(s))
		}
		plan = append(plan, newDayPlan(i+1, strings.Join(parts, " ")))
	}
	return plan
}

// assemblePlan forces the plan to exactly `days` entries numbered 1..days in
// document order: extras are dropped, missing trailing days are padded empty.
func assemblePlan(plan []response_models.ItineraryDay, days int) []response_models.ItineraryDay {
	if len(plan) > days {
		plan = plan[:days]
	}
	for i := range plan {
		plan[i].Day = i + 1
		if plan[i].Places == nil {
			plan[i].Places = []googlemaps.Place{}
		}
	}
	for day := len(plan) + 1; day <= days; day++ {
		plan = append(plan, newDayPlan(day, ""))
	}
	return plan
}

// BuildDayPlans turns raw generated text into exactly `days` day plans,
// regardless of how well the model followed the requested format.
func BuildDayPlans(raw string, days int) []response_models.ItineraryDay {
	text := normalizeGeneratedText(raw)

	var plan []response_models.ItineraryDay
	if segments := splitDayMarkers(text); segments != nil {
		plan = make([]response_models.ItineraryDay, 0, len(segments))
		for _, seg := range segments {
			plan = append(plan, newDayPlan(seg.day, flattenDayBody(seg.body)))
		}
	} else {
		plan = sentenceFallback(text, days)
	}

	return assemblePlan(plan, days)
}

func newDayPlan(day int, summary string) response_models.ItineraryDay {
	return response_models.ItineraryDay{
		Day:     day,
		Summary: summary,
		Places:  []googlemaps.Place{},
	}
}
