package bumped

import "github.com/lerenn/bumped/pkg/config"

// source exposes the loaded configuration to the release orchestrator.
type source struct {
	b *realBumped
}

func (s source) Files() []string {
	files := s.b.files.Files()
	for i, f := range files {
		files[i] = s.b.path(f)
	}
	return files
}

func (s source) Hooks(phase string) config.Hooks {
	return s.b.cfg.Plugins.ForPhase(phase)
}
