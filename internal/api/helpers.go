package api

import (
	"github.com/ratemyshots/ratemyshots-server/internal/errors"
)

// requireAdmin guards handlers that bypass the admin service but still
// need the gate, like the export downloads.
func (s *Server) requireAdmin() error {
	if !s.services.Admin.Gate().Unlocked() {
		return errors.Forbidden("admin access required")
	}
	return nil
}
