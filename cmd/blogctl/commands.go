package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"blogstore/internal/domain/entity"
	"blogstore/internal/observability/logging"
	authorUC "blogstore/internal/usecase/author"
	postUC "blogstore/internal/usecase/post"
)

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string, stderr io.Writer) int
}

var commands = map[string]command{
	"schema":        {"Create the tables and indexes if they do not exist", runSchema},
	"author-create": {"Create an author (-name, -phone)", runAuthorCreate},
	"author-get":    {"Show one author (-id)", runAuthorGet},
	"author-update": {"Update an author (-id, -name, -phone, -clear-phone)", runAuthorUpdate},
	"author-list":   {"List all authors", runAuthorList},
	"post-create":   {"Create a post (-title, -content, -summary, -category)", runPostCreate},
	"post-get":      {"Show one post (-id)", runPostGet},
	"post-update":   {"Update a post (-id, -title, -content, -summary, -category, -clear-content, -clear-summary)", runPostUpdate},
	"post-list":     {"List posts, optionally of one -category", runPostList},
}

var commandOrder = []string{
	"schema",
	"author-create", "author-get", "author-update", "author-list",
	"post-create", "post-get", "post-update", "post-list",
}

// optionalString is a flag value that remembers whether it was given,
// so an absent flag and an empty value stay distinct.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(v string) error {
	o.value = v
	o.set = true
	return nil
}

func (o *optionalString) ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// report prints err for the user and returns the matching exit code.
func report(ctx context.Context, stderr io.Writer, err error) int {
	if ve, ok := entity.AsValidationError(err); ok {
		fmt.Fprintf(stderr, "Error: invalid %s (%s): %s\n", ve.Field, ve.Code, ve.Message)
		return exitError
	}
	logging.FromContext(ctx).Error("command failed", slog.Any("error", err))
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitError
}

func runSchema(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("schema", stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	logging.FromContext(ctx).Info("schema ready")
	fmt.Fprintln(a.out, "schema ready")
	return exitOK
}

/*────────────────────  authors  ────────────────────*/

func runAuthorCreate(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("author-create", stderr)
	name := fs.String("name", "", "Author name (required, unique)")
	var phone optionalString
	fs.Var(&phone, "phone", "Phone number, exactly ten digits")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	author, err := a.authors.Create(ctx, authorUC.CreateInput{Name: *name, PhoneNumber: phone.ptr()})
	if err != nil {
		return report(ctx, stderr, err)
	}
	fmt.Fprintln(a.out, author)
	return exitOK
}

func runAuthorGet(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("author-get", stderr)
	id := fs.Int64("id", 0, "Author ID")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	author, err := a.authors.Get(ctx, *id)
	if err != nil {
		return report(ctx, stderr, err)
	}
	fmt.Fprintln(a.out, author)
	return exitOK
}

func runAuthorUpdate(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("author-update", stderr)
	id := fs.Int64("id", 0, "Author ID")
	var name, phone optionalString
	fs.Var(&name, "name", "New author name")
	fs.Var(&phone, "phone", "New phone number, exactly ten digits")
	clearPhone := fs.Bool("clear-phone", false, "Remove the phone number")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	author, err := a.authors.Update(ctx, authorUC.UpdateInput{
		ID:          *id,
		Name:        name.ptr(),
		PhoneNumber: phone.ptr(),
		ClearPhone:  *clearPhone,
	})
	if err != nil {
		return report(ctx, stderr, err)
	}
	fmt.Fprintln(a.out, author)
	return exitOK
}

func runAuthorList(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("author-list", stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	authors, err := a.authors.List(ctx)
	if err != nil {
		return report(ctx, stderr, err)
	}
	for _, author := range authors {
		fmt.Fprintln(a.out, author)
	}
	return exitOK
}

/*────────────────────  posts  ────────────────────*/

func runPostCreate(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("post-create", stderr)
	title := fs.String("title", "", "Post title")
	category := fs.String("category", "", "Fiction or Non-Fiction")
	var content, summary optionalString
	fs.Var(&content, "content", "Post body, at least 250 characters")
	fs.Var(&summary, "summary", "Summary, at most 250 characters")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	post, err := a.posts.Create(ctx, postUC.CreateInput{
		Title:    *title,
		Content:  content.ptr(),
		Summary:  summary.ptr(),
		Category: *category,
	})
	if err != nil {
		return report(ctx, stderr, err)
	}
	fmt.Fprintln(a.out, post)
	return exitOK
}

func runPostGet(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("post-get", stderr)
	id := fs.Int64("id", 0, "Post ID")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	post, err := a.posts.Get(ctx, *id)
	if err != nil {
		return report(ctx, stderr, err)
	}
	fmt.Fprintln(a.out, post)
	return exitOK
}

func runPostUpdate(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("post-update", stderr)
	id := fs.Int64("id", 0, "Post ID")
	var title, content, summary, category optionalString
	fs.Var(&title, "title", "New title")
	fs.Var(&content, "content", "New body")
	fs.Var(&summary, "summary", "New summary")
	fs.Var(&category, "category", "New category")
	clearContent := fs.Bool("clear-content", false, "Remove the body")
	clearSummary := fs.Bool("clear-summary", false, "Remove the summary")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	post, err := a.posts.Update(ctx, postUC.UpdateInput{
		ID:           *id,
		Title:        title.ptr(),
		Content:      content.ptr(),
		Summary:      summary.ptr(),
		Category:     category.ptr(),
		ClearContent: *clearContent,
		ClearSummary: *clearSummary,
	})
	if err != nil {
		return report(ctx, stderr, err)
	}
	fmt.Fprintln(a.out, post)
	return exitOK
}

func runPostList(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	fs := newFlagSet("post-list", stderr)
	var category optionalString
	fs.Var(&category, "category", "Only list posts of this category")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	var (
		posts []*entity.Post
		err   error
	)
	if category.set {
		posts, err = a.posts.ListByCategory(ctx, category.value)
	} else {
		posts, err = a.posts.List(ctx)
	}
	if err != nil {
		return report(ctx, stderr, err)
	}
	for _, post := range posts {
		fmt.Fprintln(a.out, post)
	}
	return exitOK
}
