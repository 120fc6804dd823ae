package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"readtrack/internal/bookshelf"
	"readtrack/internal/tracker"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add TITLE PAGES [GENRES]",
		Short: "Add a book (genres are separated by semicolons)",
		Example: `  readtrack add "The Hobbit" 310 "Fantasy; Classic"
  readtrack add Dune 412`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := ctx.ensureTracker(cmd)
			if err != nil {
				return err
			}
			genres := ""
			if len(args) == 3 {
				genres = args[2]
			}
			if err := addBook(cmd, ctx, tr, args[0], args[1], genres); err != nil {
				return err
			}
			return ctx.persist(cmd, tr)
		},
	}
}

func addBook(cmd *cobra.Command, ctx *commandContext, tr *tracker.Tracker, title, pages, genres string) error {
	input, err := tracker.ParseAddBook(title, pages, genres)
	if err != nil {
		return err
	}
	book, err := tr.AddBook(ctx.runContext(cmd), input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added <%s> to bookshelf (%d pages, genres: %s)\n",
		book.Title, book.TotalPages, formatTags(book.GenreTags))
	return nil
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var genre string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books on the shelf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := ctx.ensureTracker(cmd)
			if err != nil {
				return err
			}
			return listBooks(cmd, tr, strings.TrimSpace(genre), asJSON)
		},
	}
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Only list books tagged with this genre")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func listBooks(cmd *cobra.Command, tr *tracker.Tracker, genre string, asJSON bool) error {
	shelf := tr.Shelf()
	books := shelf.Books()
	if genre != "" {
		books = shelf.BooksTaggedBy(genre)
	}

	if asJSON {
		views := make([]bookView, 0, len(books))
		for _, b := range books {
			views = append(views, newBookView(b))
		}
		return writeJSON(cmd, views)
	}

	out := cmd.OutOrStdout()
	switch {
	case len(books) == 0 && genre != "":
		fmt.Fprintf(out, "No books tagged %s\n", genre)
	case len(books) == 0:
		fmt.Fprintln(out, "Bookshelf is empty")
	default:
		fmt.Fprintln(out, booksTable(books))
	}
	return nil
}

func newGenresCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "Show every genre tag with book counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := ctx.ensureTracker(cmd)
			if err != nil {
				return err
			}
			showGenres(cmd, tr.Shelf())
			return nil
		},
	}
}

func showGenres(cmd *cobra.Command, shelf *bookshelf.Bookshelf) {
	out := cmd.OutOrStdout()
	if shelf.GenreCount() == 0 {
		fmt.Fprintln(out, "No genres tagged yet")
		return
	}
	fmt.Fprintln(out, genresTable(shelf.GenreSummaries()))
}

func newProgressCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "progress TITLE PAGES",
		Short:   "Record how many pages of a book you have read",
		Example: `  readtrack progress Dune 120`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := ctx.ensureTracker(cmd)
			if err != nil {
				return err
			}
			if err := updateProgress(cmd, ctx, tr, args[0], args[1]); err != nil {
				return err
			}
			return ctx.persist(cmd, tr)
		},
	}
}

func updateProgress(cmd *cobra.Command, ctx *commandContext, tr *tracker.Tracker, title, pages string) error {
	n, err := tracker.ParsePages("update progress", "pages read", pages)
	if err != nil {
		return err
	}
	book, err := tr.UpdateProgress(ctx.runContext(cmd), title, n)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), progressLine(book))
	return nil
}

func newTagCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "tag TITLE TAGS",
		Short:   "Add genre tags to a book (tags are separated by semicolons)",
		Example: `  readtrack tag Dune "SciFi; Classic"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := ctx.ensureTracker(cmd)
			if err != nil {
				return err
			}
			if err := tagBook(cmd, ctx, tr, args[0], args[1]); err != nil {
				return err
			}
			return ctx.persist(cmd, tr)
		},
	}
}

func tagBook(cmd *cobra.Command, ctx *commandContext, tr *tracker.Tracker, title, tags string) error {
	book, err := tr.TagBook(ctx.runContext(cmd), title, bookshelf.ParseGenreTags(tags)...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Tagged <%s>: %s\n", book.Title, formatTags(book.GenreTags))
	return nil
}
