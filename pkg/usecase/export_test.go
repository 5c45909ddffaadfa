package usecase

// ConfigService exports for testing
type ConfigService = configService

// NewConfigServiceWithDir returns a config service rooted at dir instead of the home directory
func NewConfigServiceWithDir(dir string) *ConfigService {
	return &configService{configDir: dir}
}

// Export configService methods for testing
func (c *configService) FindConfigInDirectory(dir string) string {
	return c.findConfigInDirectory(dir)
}
