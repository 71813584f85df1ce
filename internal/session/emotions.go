package session

import "fmt"

// Emotions returns the configured mood glyphs in display order.
func (s *Session) Emotions() []string {
	return append([]string(nil), s.snap.Emotions...)
}

func (s *Session) emotionIndex(e string) int {
	for i, v := range s.snap.Emotions {
		if v == e {
			return i
		}
	}
	return -1
}

// AddEmotion appends a glyph with its color.
func (s *Session) AddEmotion(glyph, color string) error {
	if glyph == "" {
		return fmt.Errorf("emotion glyph cannot be empty")
	}
	if s.emotionIndex(glyph) >= 0 {
		return fmt.Errorf("emotion %q already exists", glyph)
	}
	if color == "" {
		color = "#cccccc"
	}
	s.snap.Emotions = append(s.snap.Emotions, glyph)
	s.snap.EmotionColors[glyph] = color
	s.changed()
	return nil
}

// RenameEmotion replaces a glyph, migrating every day that carried it and its color.
func (s *Session) RenameEmotion(oldGlyph, newGlyph string) error {
	i := s.emotionIndex(oldGlyph)
	if i < 0 {
		return fmt.Errorf("unknown emotion %q", oldGlyph)
	}
	if newGlyph == oldGlyph {
		return nil
	}
	if newGlyph == "" {
		return fmt.Errorf("emotion glyph cannot be empty")
	}
	if s.emotionIndex(newGlyph) >= 0 {
		return fmt.Errorf("emotion %q already exists", newGlyph)
	}
	for _, de := range s.snap.Entries {
		if de.Emotion == oldGlyph {
			de.Emotion = newGlyph
		}
	}
	if c, ok := s.snap.EmotionColors[oldGlyph]; ok {
		delete(s.snap.EmotionColors, oldGlyph)
		if c != "" {
			s.snap.EmotionColors[newGlyph] = c
		}
	}
	s.snap.Emotions[i] = newGlyph
	s.changed()
	return nil
}

// RecolorEmotion sets the color of a glyph.
func (s *Session) RecolorEmotion(glyph, color string) error {
	if s.emotionIndex(glyph) < 0 {
		return fmt.Errorf("unknown emotion %q", glyph)
	}
	s.snap.EmotionColors[glyph] = color
	s.changed()
	return nil
}

// MoveEmotion swaps a glyph with its neighbour delta positions away.
func (s *Session) MoveEmotion(glyph string, delta int) (bool, error) {
	i := s.emotionIndex(glyph)
	if i < 0 {
		return false, fmt.Errorf("unknown emotion %q", glyph)
	}
	j := i + delta
	if j < 0 || j >= len(s.snap.Emotions) {
		return false, nil
	}
	s.snap.Emotions[i], s.snap.Emotions[j] = s.snap.Emotions[j], s.snap.Emotions[i]
	s.changed()
	return true, nil
}

// DeleteEmotion removes a glyph from the palette. Days that carried it keep it.
func (s *Session) DeleteEmotion(glyph string) error {
	i := s.emotionIndex(glyph)
	if i < 0 {
		return fmt.Errorf("unknown emotion %q", glyph)
	}
	s.snap.Emotions = append(s.snap.Emotions[:i:i], s.snap.Emotions[i+1:]...)
	s.changed()
	return nil
}
