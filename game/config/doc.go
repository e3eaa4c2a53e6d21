// Package config provides runtime settings for the number-guessing game.
//
// Settings come from the environment, optionally seeded from a .env file:
//
//	NUMGUESS_DATA_DIR       directory holding score files (default ".")
//	NUMGUESS_STORE          "file" or "sqlite" (default "file")
//	NUMGUESS_DEBUG          enable debug logging
//	NUMGUESS_HTTP_ADDR      listen address of the serve command
//	NUMGUESS_POLL_INTERVAL  scoreboard refresh interval of the serve command
//	NGROK_ENABLED           expose the serve command through ngrok
//	NGROK_AUTHTOKEN         ngrok auth token
//	NGROK_DOMAIN            optional reserved ngrok domain
//
// Command-line flags take precedence over these values.
//
// Usage:
//
//	settings, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
package config
