package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	Color         bool
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		Color:         true,
	}
}

// loadConfig reads ~/.glyphpadrc. A missing or unreadable file gives the
// defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, configFileName))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "color", "colour":
			config.Color = strings.ToLower(value) == "true"
		case "logfile", "log_file", "log":
			config.LogFile = expandPath(value, homeDir)
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath resolves a bare file name against the save directory. Paths
// that already name a directory are left alone.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) || strings.ContainsRune(filename, filepath.Separator) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
