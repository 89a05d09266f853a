package core

// ScreenStack holds the root picker screen and any overlays above it.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// ReplaceTop swaps the top screen for next. A nil next keeps the current one.
func (s *ScreenStack) ReplaceTop(next Screen) {
	if next == nil || len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1] = next
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Root() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[0]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
