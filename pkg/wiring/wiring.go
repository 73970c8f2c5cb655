// Package wiring declares the marker blocks install maintains inside the
// shared hyprland.conf. Each block has a stable name (part of its
// delimiters) and a body of Hyprland directives. The legacy substring is
// what the first wiring generation tagged its lines with; uninstall
// still sweeps for it so configs written by old releases come clean.
package wiring

// Block is one named wiring block for the shared configuration file.
type Block struct {
	Name string
	Body string

	// LegacySubstring tags lines written by the pre-block generation.
	LegacySubstring string
}

// Blocks returns the full wiring catalog in install order.
func Blocks() []Block {
	return []Block{
		{
			Name: "wallpaper",
			Body: "exec-once = swww-daemon\n" +
				"exec-once = wallpaper-cycle start",
			LegacySubstring: "# hyprkit-wallpaper",
		},
		{
			Name:            "power-menu",
			Body:            "bind = SUPER, Escape, exec, powermenu",
			LegacySubstring: "# hyprkit-powermenu",
		},
		{
			Name:            "wlogout",
			Body:            "bind = SUPER SHIFT, Escape, exec, wlogout",
			LegacySubstring: "# hyprkit-wlogout",
		},
		{
			Name:            "emergency-exit",
			Body:            "bind = SUPER CTRL ALT, Backspace, exit,",
			LegacySubstring: "# hyprkit-exit",
		},
		{
			Name: "screenshots",
			Body: "bind = , Print, exec, grim -g \"$(slurp)\" - | wl-copy\n" +
				"bind = SHIFT, Print, exec, grim - | wl-copy",
			LegacySubstring: "# hyprkit-screenshot",
		},
	}
}

// Names returns the block names in install order.
func Names() []string {
	blocks := Blocks()
	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = b.Name
	}
	return names
}
