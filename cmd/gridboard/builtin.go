package main

import "gridboard/internal/layout"

// defaultLayout returns the built-in default layout definition. Bumping
// Version after adding components here is what lets existing users pick
// up the additions without losing their customizations.
func defaultLayout(name string) *layout.Config {
	return &layout.Config{
		Name:    name,
		Version: 2,
		Mobile: layout.Layout{
			{
				ContainerName: "main",
				Width:         "1fr",
				Items: []layout.Element{
					{ComponentName: "build-status", Metadata: meta("Build Status")},
					{ComponentName: "recent-commits", Metadata: meta("Recent Commits")},
					{ComponentName: "open-prs", Metadata: meta("Open PRs")},
					{ComponentName: "notes", Metadata: meta("Notes")},
					{ComponentName: "clock", Metadata: meta("Clock")},
				},
			},
		},
		Tablet: layout.Layout{
			{
				ContainerName: "main",
				Width:         "2fr",
				Items: []layout.Element{
					{ComponentName: "build-status", Metadata: meta("Build Status")},
					{ComponentName: "recent-commits", Metadata: meta("Recent Commits")},
					{ComponentName: "open-prs", Metadata: meta("Open PRs")},
				},
			},
			{
				ContainerName: "side",
				Width:         "1fr",
				Items: []layout.Element{
					{ComponentName: "notes", Metadata: meta("Notes")},
					{ComponentName: "clock", Metadata: meta("Clock")},
				},
			},
		},
		Desktop: layout.Layout{
			{
				ContainerName: "main",
				Width:         "2fr",
				Items: []layout.Element{
					{ComponentName: "build-status", Metadata: meta("Build Status")},
					{ComponentName: "recent-commits", Metadata: meta("Recent Commits")},
				},
			},
			{
				ContainerName: "side",
				Width:         "1fr",
				Items: []layout.Element{
					{ComponentName: "open-prs", Metadata: meta("Open PRs")},
				},
			},
			{
				ContainerName: "aux",
				Width:         "1fr",
				Items: []layout.Element{
					{ComponentName: "notes", Metadata: meta("Notes")},
					{ComponentName: "clock", Metadata: meta("Clock")},
				},
			},
		},
	}
}

func meta(title string) map[string]any {
	return map[string]any{"title": title}
}
