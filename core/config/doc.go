// Package config provides configuration management for the catalog pipeline.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Pipeline: manifest location for the compile run
//   - Storage: where catalogue documents are fetched from (local dir or bucket)
//   - Database: destination database connection details
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Host)
package config
