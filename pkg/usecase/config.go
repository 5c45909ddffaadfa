package usecase

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackmsg/pkg/domain"
	"github.com/m-mizutani/slackmsg/pkg/domain/interfaces"
	"github.com/m-mizutani/slackmsg/pkg/domain/model"
	"go.yaml.in/yaml/v3"
)

// Looked up in this order by LoadFromDirectory
var configFileNames = []string{".slackmsg.yml", ".slackmsg.yaml"}

const configTemplate = `# slackmsg configuration
#
# Display options applied to every payload. Command line flags take
# precedence over the values below. $VAR and ${VAR} are expanded in
# channel, icon_url and username.
slack:
  # Destination channel, e.g. #alerts or a channel ID
  channel: "#alerts"

  # Attachment color: good, warning, danger, or #hex
  color: "#FF0000"

  # Bot icon. Either an emoji (with or without colons) or an image URL
  icon_emoji: "ghost"
  # icon_url: "https://example.com/icon.png"

  # Sender name (only works if webhook allows customization)
  # username: "alert-bot"

  # Link @user and #channel names in the message text
  link_names: true

  # Extra text shown as a separate attachment
  # custom_message: "Please check the dashboard"
`

type configService struct {
	configDir string
}

// NewConfigService creates a new ConfigService instance
func NewConfigService() interfaces.ConfigService {
	homeDir, _ := os.UserHomeDir()
	return &configService{
		configDir: filepath.Join(homeDir, ".config", "slackmsg"),
	}
}

// Load reads and parses the configuration file at path
func (c *configService) Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is given by the user
	if err != nil {
		return nil, domain.ErrConfiguration.Wrap(err, goerr.V("path", path))
	}

	var config model.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, domain.ErrConfiguration.Wrap(err, goerr.V("path", path))
	}
	config.Slack.ExpandEnv()

	return &config, nil
}

// LoadDefault loads the config from the default path, or returns an empty
// config if the file does not exist
func (c *configService) LoadDefault() (*model.Config, error) {
	path := c.GetDefaultPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &model.Config{}, nil
	}

	return c.Load(path)
}

// LoadFromDirectory loads the first config file found in dir. The returned
// path is empty when no file is found, and is set even if parsing fails.
func (c *configService) LoadFromDirectory(dir string) (*model.Config, string, error) {
	path := c.findConfigInDirectory(dir)
	if path == "" {
		return &model.Config{}, "", nil
	}

	config, err := c.Load(path)
	if err != nil {
		return nil, path, err
	}

	return config, path, nil
}

func (c *configService) findConfigInDirectory(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func (c *configService) GetDefaultPath() string {
	return filepath.Join(c.configDir, "config.yml")
}

func (c *configService) GenerateTemplate() string {
	return configTemplate
}

// SaveTemplate writes the template to path. An existing file is kept unless force is set.
func (c *configService) SaveTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return goerr.New("config file already exists, use --force to overwrite", goerr.V("path", path))
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return domain.ErrConfiguration.Wrap(err, goerr.V("path", path))
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return domain.ErrConfiguration.Wrap(err, goerr.V("path", path))
	}

	return nil
}
