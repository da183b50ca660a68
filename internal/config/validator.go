package config

// Warnings reports settings that are valid but likely unintended
func (c *Config) Warnings() []string {
	var warnings []string

	if c.SaveBackend == "postgres" && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is the default value - set a real password for shared databases")
	}
	if c.SaveBackend == "postgres" && c.APIKey == "" {
		warnings = append(warnings, "API_KEY is empty - any client can read and write every profile")
	}
	if c.SaveBackend == "memory" {
		warnings = append(warnings, "SAVE_BACKEND=memory keeps gardens only until the process exits")
	}
	if c.ProfileCacheTTL == 0 {
		warnings = append(warnings, "PROFILE_CACHE_TTL=0 keeps every loaded garden until the cache is full")
	}
	if c.Environment == "production" && c.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT should be json in production")
	}
	return warnings
}
