// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	sync     key.Binding
	fullSync key.Binding
	purge    key.Binding
	quit     key.Binding
}

var keys = keyMap{
	sync:     key.NewBinding(key.WithKeys("s")),
	fullSync: key.NewBinding(key.WithKeys("f")),
	purge:    key.NewBinding(key.WithKeys("p")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
