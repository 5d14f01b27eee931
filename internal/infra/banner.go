package infra

import (
	"fmt"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorCyan  = "\033[36m"
)

// PrintBanner displays the startup banner for a service binary.
func PrintBanner(cfg *Config, service, addr string) {
	fmt.Println()
	fmt.Printf("%s=========================================%s\n", ColorCyan, ColorReset)
	fmt.Printf("%s  %s (%s)%s\n", ColorCyan, cfg.App.Name, cfg.App.Version, ColorReset)
	fmt.Printf("%s  SERVICE: %-30s%s\n", ColorCyan, service, ColorReset)
	fmt.Printf("%s  LISTEN:  %-30s%s\n", ColorCyan, addr, ColorReset)
	fmt.Printf("%s=========================================%s\n", ColorCyan, ColorReset)
	fmt.Println()
}
