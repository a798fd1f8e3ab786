package config

import "fmt"

// GetCurrentProfile returns the current active profile and its name.
func GetCurrentProfile() (*Profile, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}

	if cfg.CurrentProfile == "" {
		return nil, "", nil
	}

	p, ok := cfg.Profiles[cfg.CurrentProfile]
	if !ok {
		return nil, "", fmt.Errorf("profile %q not found", cfg.CurrentProfile)
	}

	return p, cfg.CurrentProfile, nil
}

// SetCurrentProfile sets the current active profile.
func SetCurrentProfile(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	// Validate profile exists
	if _, ok := cfg.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}

	cfg.CurrentProfile = name
	return Save(cfg)
}

// AddProfile adds or updates a profile.
func AddProfile(name string, p *Profile) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	cfg.Profiles[name] = p
	return Save(cfg)
}

// DeleteProfile removes a profile.
func DeleteProfile(name string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	delete(cfg.Profiles, name)

	// Clear current profile if it was the deleted one
	if cfg.CurrentProfile == name {
		cfg.CurrentProfile = ""
	}

	return Save(cfg)
}

// ListProfiles returns all configured profiles and the current one.
func ListProfiles() (map[string]*Profile, string, error) {
	cfg, err := Load()
	if err != nil {
		return nil, "", err
	}

	return cfg.Profiles, cfg.CurrentProfile, nil
}
