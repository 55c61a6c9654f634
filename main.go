// Main entry point: CLI argument parsing, signal handling, and TUI initialization.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// setupSignalHandler exits with 128+signal on SIGTERM, SIGHUP or SIGQUIT.
// SIGINT arrives as ctrl+c through the TUI.
func setupSignalHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	go func() {
		sig := <-c
		log.Printf("signal: %s, exiting", sig)
		code := ExitSIGINT
		if s, ok := sig.(syscall.Signal); ok {
			code = 128 + int(s)
		}
		os.Exit(code)
	}()
}

func main() {
	// Parse CLI args - default to TUI mode
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help", "help":
			printUsage()
			return
		case "catalog":
			cfg := loadConfig()
			if err := cmdCatalog(os.Stdout, cfg.CatalogPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "tui":
			// Fall through to TUI mode
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	// TUI mode
	cfg := loadConfig()
	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogPath, "ventura-sim")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	settings := loadSettings(cfg.SettingsPath)
	cat, catErr := loadCatalog(cfg.CatalogPath)

	setupSignalHandler()
	m := initialModel(cfg, cat, settings)
	if catErr != nil {
		log.Printf("Config: %v", catErr)
		m.toasts.Notify("Catalog not loaded: "+catErr.Error(), NoticeError)
	}
	unsubscribe := m.desk.Subscribe(screenLogger())
	defer unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// screenLogger logs top-level screen and integrity transitions.
func screenLogger() func(Snapshot) {
	var last Snapshot
	first := true
	return func(s Snapshot) {
		if first || s.Screen != last.Screen || s.Phase != last.Phase {
			log.Printf("desktop: screen=%s integrity=%s panel=%s dialog=%s",
				s.Screen, s.Phase, s.Windows.Panel, s.Windows.Dialog)
		}
		last, first = s, false
	}
}

func printUsage() {
	fmt.Print(`Usage: ventura-sim <command>

Commands:
    tui         Interactive desktop simulation (default)
    catalog     Print the wallpaper and store catalogs
    help        Show this help

Environment:
    VENTURA_SIM_CONFIG_DIR      Config directory (default ~/.config/ventura-sim/)
    VENTURA_SIM_CRASH_DELAY     Delay between deleting SystemMac32 and the crash (default 2s)
    VENTURA_SIM_TOAST_DURATION  How long notices stay on screen (default 3s)
    VENTURA_SIM_DEBUG           Write a debug log when set
    VENTURA_SIM_LOG             Debug log path (default ventura-sim.log)

Config files:
    settings.env    Initial preferences (PREF_WALLPAPER, PREF_BRIGHTNESS, ...)
    catalog.yaml    Wallpaper and store catalog overrides
`)
}

// cmdCatalog prints the catalog resolved from path.
func cmdCatalog(w io.Writer, path string) error {
	cat, err := loadCatalog(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Wallpapers:")
	for _, wp := range cat.Wallpapers {
		fmt.Fprintf(w, "  %2d  %-16s %s -> %s\n", wp.ID, wp.Name, wp.From, wp.To)
	}

	for _, p := range []Panel{PanelShop, PanelSteam} {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s:\n", p)
		for _, it := range cat.Items(p) {
			price := it.Price
			if price == "" {
				price = "-"
			}
			fmt.Fprintf(w, "  %2d  %-18s %9s  %-7s %s\n", it.ID, it.Name, it.Size, price, it.ActionLabel())
		}
	}
	return nil
}
