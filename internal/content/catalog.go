package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// StakingProduct is a staking service listed by the product card grids.
type StakingProduct struct {
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	URL         string   `yaml:"url"`
	Description string   `yaml:"description"`
	Logo        string   `yaml:"logo"`
	Platforms   []string `yaml:"platforms"`
	OpenSource  bool     `yaml:"openSource"`
	Audited     bool     `yaml:"audited"`
}

type Meetup struct {
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
	Emoji    string `yaml:"emoji"`
	Link     string `yaml:"link"`
}

type App struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Image       string `yaml:"image"`
}

type Contributor struct {
	Login     string `yaml:"login"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
	Profile   string `yaml:"profile"`
}

// RoadmapItem is one entry of the protocol roadmap widget.
type RoadmapItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Link        string `yaml:"link"`
}

// Upgrade is a network upgrade whose status the UpgradeStatus component reports.
type Upgrade struct {
	Name        string `yaml:"name"`
	Date        string `yaml:"date"`
	Shipped     bool   `yaml:"shipped"`
	Description string `yaml:"description"`
}

// Catalog is the structured data the shortcode components list.
type Catalog struct {
	StakingProducts []StakingProduct
	Meetups         []Meetup
	Apps            []App
	Contributors    []Contributor
	Roadmap         []RoadmapItem
	Upgrades        map[string]Upgrade
}

// ProductsIn returns the staking products of one category in file order.
func (c *Catalog) ProductsIn(category string) []StakingProduct {
	if c == nil {
		return nil
	}
	var out []StakingProduct
	for _, p := range c.StakingProducts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// LoadCatalog reads the YAML data files under dir. Missing files leave their
// list empty.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	c := &Catalog{}
	files := []struct {
		name string
		dst  any
	}{
		{"staking-products.yaml", &c.StakingProducts},
		{"meetups.yaml", &c.Meetups},
		{"apps.yaml", &c.Apps},
		{"contributors.yaml", &c.Contributors},
		{"roadmap.yaml", &c.Roadmap},
		{"upgrades.yaml", &c.Upgrades},
	}
	for _, f := range files {
		raw, err := fs.ReadFile(fsys, path.Join(dir, f.name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("catalog %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", f.name, err)
		}
	}
	return c, nil
}
