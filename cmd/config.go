package cmd

type Config struct {
	HTTPPort    string
	DataDir     string
	AmqpURL     string
	AdminToken  string
	CleanupDays int
}
