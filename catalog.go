// Catalog data: wallpapers and the two storefront listings.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Wallpaper is a two-colour gradient the desktop can show.
type Wallpaper struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// ByteSize is a size in bytes written as a human string ("1.2 GB") in catalog files.
type ByteSize uint64

func (b ByteSize) String() string {
	return humanize.Bytes(uint64(b))
}

// UnmarshalYAML accepts "250 MB", "26GB" or a plain byte count.
func (b *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("size must be a scalar, got %v", value.Tag)
	}
	n, err := humanize.ParseBytes(value.Value)
	if err != nil {
		return err
	}
	*b = ByteSize(n)
	return nil
}

// StoreItem is an installable title. Price is empty for stores that do not sell.
type StoreItem struct {
	ID    int      `yaml:"id"`
	Name  string   `yaml:"name"`
	Icon  string   `yaml:"icon"`
	Size  ByteSize `yaml:"size"`
	Price string   `yaml:"price,omitempty"`
}

// IsFree reports whether the item costs nothing.
func (s StoreItem) IsFree() bool {
	return s.Price == "" || s.Price == "Free"
}

// ActionLabel is the text on the item's install button.
func (s StoreItem) ActionLabel() string {
	switch {
	case s.Price == "":
		return "Download"
	case s.IsFree():
		return "Play"
	default:
		return "Buy"
	}
}

// Catalog is read-only reference data injected at startup.
type Catalog struct {
	Wallpapers []Wallpaper `yaml:"wallpapers"`
	Shop       []StoreItem `yaml:"shop"`
	Steam      []StoreItem `yaml:"steam"`
}

// Wallpaper looks up a wallpaper by id.
func (c Catalog) Wallpaper(id int) (Wallpaper, bool) {
	for _, wp := range c.Wallpapers {
		if wp.ID == id {
			return wp, true
		}
	}
	return Wallpaper{}, false
}

// Items returns the listing shown by a store panel.
func (c Catalog) Items(p Panel) []StoreItem {
	switch p {
	case PanelShop:
		return c.Shop
	case PanelSteam:
		return c.Steam
	}
	return nil
}

func defaultCatalog() Catalog {
	return Catalog{
		Wallpapers: []Wallpaper{
			{ID: 1, Name: "Ventura Blue", From: "#60A5FA", To: "#EC4899"},
			{ID: 2, Name: "Desert", From: "#FB923C", To: "#EC4899"},
			{ID: 3, Name: "Forest", From: "#4ADE80", To: "#14B8A6"},
			{ID: 4, Name: "Night", From: "#1F2937", To: "#000000"},
			{ID: 5, Name: "Sunset", From: "#FACC15", To: "#EF4444"},
			{ID: 6, Name: "Ocean", From: "#22D3EE", To: "#4F46E5"},
		},
		Shop: []StoreItem{
			{ID: 1, Name: "Minecraft", Icon: "🎮", Size: 1200 * humanize.MByte},
			{ID: 2, Name: "Among Us", Icon: "🚀", Size: 250 * humanize.MByte},
			{ID: 3, Name: "Roblox", Icon: "🎯", Size: 450 * humanize.MByte},
			{ID: 4, Name: "Fortnite", Icon: "⚔️", Size: 26 * humanize.GByte},
			{ID: 5, Name: "GTA V", Icon: "🏎️", Size: 94 * humanize.GByte},
			{ID: 6, Name: "Valorant", Icon: "🎯", Size: 23 * humanize.GByte},
		},
		Steam: []StoreItem{
			{ID: 1, Name: "Counter-Strike 2", Icon: "🔫", Size: 45 * humanize.GByte, Price: "Free"},
			{ID: 2, Name: "Dota 2", Icon: "⚔️", Size: 40 * humanize.GByte, Price: "Free"},
			{ID: 3, Name: "Team Fortress 2", Icon: "🎮", Size: 15 * humanize.GByte, Price: "Free"},
			{ID: 4, Name: "Rust", Icon: "🏗️", Size: 20 * humanize.GByte, Price: "$39.99"},
			{ID: 5, Name: "Apex Legends", Icon: "🎯", Size: 75 * humanize.GByte, Price: "Free"},
			{ID: 6, Name: "PUBG", Icon: "🪂", Size: 30 * humanize.GByte, Price: "Free"},
		},
	}
}

// loadCatalog reads a catalog override. A missing file yields the default
// catalog; sections absent from the file keep their defaults.
func loadCatalog(path string) (Catalog, error) {
	cat := defaultCatalog()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cat, nil
	}
	if err != nil {
		return cat, err
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		return cat, &catalogError{field: path, err: err}
	}
	if len(override.Wallpapers) > 0 {
		cat.Wallpapers = override.Wallpapers
	}
	if len(override.Shop) > 0 {
		cat.Shop = override.Shop
	}
	if len(override.Steam) > 0 {
		cat.Steam = override.Steam
	}

	if err := cat.validate(); err != nil {
		return defaultCatalog(), err
	}
	return cat, nil
}

func (c Catalog) validate() error {
	seen := make(map[int]bool)
	for i, wp := range c.Wallpapers {
		field := fmt.Sprintf("wallpapers[%d]", i)
		if wp.Name == "" {
			return &catalogError{field: field, err: errors.New("name required")}
		}
		if wp.From == "" || wp.To == "" {
			return &catalogError{field: field, err: errors.New("from and to colours required")}
		}
		if seen[wp.ID] {
			return &catalogError{field: field, err: fmt.Errorf("duplicate id %d", wp.ID)}
		}
		seen[wp.ID] = true
	}
	sections := []struct {
		name  string
		items []StoreItem
	}{{"shop", c.Shop}, {"steam", c.Steam}}
	for _, sec := range sections {
		for i, item := range sec.items {
			if item.Name == "" {
				return &catalogError{field: fmt.Sprintf("%s[%d]", sec.name, i), err: errors.New("name required")}
			}
		}
	}
	return nil
}

