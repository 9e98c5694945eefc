package prefs

// Captions returns the filename to caption map. The result is never nil.
func (s *Store) Captions() map[string]string {
	captions := Get[map[string]string](s, KeyCaptions, nil)
	if captions == nil {
		captions = make(map[string]string)
	}
	return captions
}

func (s *Store) SetCaptions(captions map[string]string) bool {
	return s.Set(KeyCaptions, captions)
}

// Caption returns the stored caption for filename. An empty caption counts
// as absent.
func (s *Store) Caption(filename string) (string, bool) {
	caption := s.Captions()[filename]
	return caption, caption != ""
}

// SetCaption stores caption for filename by rewriting the whole map.
func (s *Store) SetCaption(filename, caption string) bool {
	captions := s.Captions()
	captions[filename] = caption
	return s.SetCaptions(captions)
}
