package config

import "landscapes/internal/landscape"

// elementaryFlag implements -1: it selects the elementary family on a
// clamped grid and sets the rule in one go.
type elementaryFlag struct{ c *Config }

func (f elementaryFlag) String() string {
	if f.c == nil || f.c.Family != landscape.Elementary.String() {
		return ""
	}
	return f.c.Rule
}

func (f elementaryFlag) Set(s string) error {
	if _, err := landscape.ParseFamilyRule(landscape.Elementary, s); err != nil {
		return err
	}
	f.c.Family = landscape.Elementary.String()
	f.c.Topology = landscape.Clamped.String()
	f.c.Rule = s
	return nil
}

// lifeLikeFlag implements -2: it selects the life-like family and sets the rule.
type lifeLikeFlag struct{ c *Config }

func (f lifeLikeFlag) String() string {
	if f.c == nil || f.c.Family != landscape.LifeLike.String() {
		return ""
	}
	return f.c.Rule
}

func (f lifeLikeFlag) Set(s string) error {
	if _, err := landscape.ParseFamilyRule(landscape.LifeLike, s); err != nil {
		return err
	}
	f.c.Family = landscape.LifeLike.String()
	f.c.Rule = s
	return nil
}
