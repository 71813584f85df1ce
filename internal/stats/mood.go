package stats

import "github.com/Tiliavir/temps-vecu/internal/model"

// EmotionGroups turns the configured emotion palette into groups.
func EmotionGroups(s model.Settings) []Group {
	out := make([]Group, 0, len(s.Emotions))
	for _, e := range s.Emotions {
		out = append(out, Group{Key: e, Name: e, Color: s.EmotionColor(e)})
	}
	return out
}

// EmotionCounts counts the days carrying each configured emotion. Emotions
// that are no longer configured are ignored.
func EmotionCounts(dates []string, entries model.Entries, emotions []string) map[string]int {
	counts := make(map[string]int, len(emotions))
	for _, e := range emotions {
		counts[e] = 0
	}
	for _, d := range dates {
		de := entries[d]
		if de == nil || de.Emotion == "" {
			continue
		}
		if _, ok := counts[de.Emotion]; ok {
			counts[de.Emotion]++
		}
	}
	return counts
}

// WeekdayEmotions counts emotions per weekday, Monday first.
func WeekdayEmotions(dates []string, entries model.Entries, emotions []string) [7]map[string]int {
	var out [7]map[string]int
	for i := range out {
		out[i] = make(map[string]int, len(emotions))
		for _, e := range emotions {
			out[i][e] = 0
		}
	}
	for _, d := range dates {
		de := entries[d]
		if de == nil || de.Emotion == "" {
			continue
		}
		idx, ok := WeekdayOf(d)
		if !ok {
			continue
		}
		if _, known := out[idx][de.Emotion]; known {
			out[idx][de.Emotion]++
		}
	}
	return out
}
