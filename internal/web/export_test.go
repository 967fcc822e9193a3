package web

// SetAlive toggles the check alive state without stopping the server.
func (s *Service) SetAlive(alive bool) {
	s.alive.Store(alive)
}
