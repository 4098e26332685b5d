// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles account operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Account and session operations",
		Commands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password (at least 8 characters)",
						Required: true,
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:  "login",
				Usage: "Log in and store the session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session",
				Action: r.AuthStatus,
			},
		},
	}
}

// videosCommand handles catalog operations
func videosCommand(r *Runner) *cli.Command {
	listFlags := []cli.Flag{
		&cli.IntFlag{
			Name:  "page",
			Usage: "Page number",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Videos per page (20, 50, or 100)",
			Value: 20,
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Sort field (createdAt, views, likes)",
			Value: "createdAt",
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "Sort direction (asc, desc)",
			Value: "desc",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}

	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"v"},
		Usage:   "Video catalog operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List videos with pagination and sorting",
				Flags:  listFlags,
				Action: r.VideosList,
			},
			{
				Name:  "get",
				Usage: "Show a video with its comments and likes",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.VideosGet,
			},
			{
				Name:  "stats",
				Usage: "Show full stats for one video",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.VideosStats,
			},
			{
				Name:  "like",
				Usage: "Toggle your like on a video",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.VideosLike,
			},
			{
				Name:  "comment",
				Usage: "Comment on a video",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Comment text",
						Required: true,
					},
				},
				Action: r.VideosComment,
			},
			{
				Name:  "delete",
				Usage: "Delete a video from the catalog",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.VideosDelete,
			},
			{
				Name:  "upload",
				Usage: "Upload a video file with metadata",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Video title (3 to 100 characters)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "description",
						Aliases:  []string{"d"},
						Usage:    "Video description (10 to 500 characters)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "tags",
						Usage:    "Comma-separated tags (1 to 10)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the video file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "thumbnail",
						Usage: "Path to a thumbnail image",
					},
				},
				Action: r.VideosUpload,
			},
		},
	}
}

// analyticsCommand handles platform analytics
func analyticsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "analytics",
		Aliases: []string{"stats"},
		Usage:   "Platform analytics and exports",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show platform totals and per-video performance",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "page",
						Usage: "Page number",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Videos per page",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort field (createdAt, views, likes)",
						Value: "createdAt",
					},
					&cli.StringFlag{
						Name:  "order",
						Usage: "Sort direction (asc, desc)",
						Value: "desc",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.BoolFlag{
						Name:  "markdown",
						Usage: "Render a Markdown report",
					},
				},
				Action: r.AnalyticsShow,
			},
			{
				Name:  "export",
				Usage: "Bulk export per-video stats to files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: json, csv, txt",
						Value: "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent export workers",
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Requests per second",
					},
				},
				Action: r.AnalyticsExport,
			},
			{
				Name:   "jobs",
				Usage:  "List recorded export runs",
				Action: r.AnalyticsJobs,
			},
		},
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"ui"},
		Usage:   "Launch the interactive terminal UI",
		Action:  r.TUI,
	}
}
