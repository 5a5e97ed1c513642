package config

import "fmt"

func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}

	if len(c.Sinks) == 0 {
		return fmt.Errorf("at least one sink is required")
	}

	for name, s := range c.Sources {
		switch s.Type {
		case "file":
			if s.Path == "" {
				return fmt.Errorf("source [%s]: file source requires a path", name)
			}
		case "docker":
			if s.ContainerID == "" {
				return fmt.Errorf("source [%s]: docker source requires a container_id", name)
			}
		case "stdin":
		default:
			return fmt.Errorf("source [%s]: unknown type '%s'", name, s.Type)
		}
	}

	for name, s := range c.Sinks {
		switch s.Type {
		case "stdout", "slog":
		default:
			return fmt.Errorf("sink [%s]: unknown type '%s'", name, s.Type)
		}
	}

	return nil
}
