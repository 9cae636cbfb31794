package cli

import (
	"context"
	"fmt"
	"strings"

	"conduit-cli/internal/api"
)

// List fetches and prints one page of the article feed.
func (a *App) List(ctx context.Context, page int) error {
	if err := a.store.Articles.FetchPage(ctx, page); err != nil {
		a.reportError(err)
		return err
	}

	window := a.store.Articles.Page()
	for _, art := range window.Items {
		marker := " "
		if art.Favorited {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-40s  by %-16s  ♥ %d\n", marker, art.Slug, art.Author.Username, art.FavoritesCount)
	}
	fmt.Fprintf(a.out, "page %d of %d (%d articles)\n", window.CurrentPage, window.PageCount, window.TotalCount)
	return nil
}

// Read fetches a single article and prints it in full.
func (a *App) Read(ctx context.Context, slug string) error {
	if err := a.store.Articles.FetchOne(ctx, slug); err != nil {
		a.reportError(err)
		return err
	}

	art := a.store.Articles.Focused()
	fmt.Fprintf(a.out, "%s\nby %s on %s\n", art.Title, art.Author.Username, art.CreatedAt.Format("2006-01-02"))
	if len(art.TagList) > 0 {
		fmt.Fprintf(a.out, "tags: %s\n", strings.Join(art.TagList, ", "))
	}
	fmt.Fprintf(a.out, "\n%s\n", art.Body)
	return nil
}

// Publish prompts for a new article and creates it.
func (a *App) Publish(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	draft, err := a.promptDraft(api.ArticleDraft{})
	if err != nil {
		return err
	}

	if err := a.store.Articles.Create(ctx, draft); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Published as %s\n", a.store.Articles.Focused().Slug)
	return nil
}

// Edit re-fetches an article and, when the signed-in user is its author,
// prompts for replacement fields and updates it. Empty answers keep the
// current value.
func (a *App) Edit(ctx context.Context, slug string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.store.Articles.FetchOne(ctx, slug); err != nil {
		a.reportError(err)
		return err
	}

	current := a.store.Articles.Focused()
	if current.Author.Username != a.store.Users.CurrentUser().Username {
		return fmt.Errorf("only %s can edit this article", current.Author.Username)
	}

	draft, err := a.promptDraft(api.ArticleDraft{
		Title:       current.Title,
		Description: current.Description,
		Body:        current.Body,
		TagList:     current.TagList,
	})
	if err != nil {
		return err
	}

	if err := a.store.Articles.Update(ctx, slug, draft); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Updated %s\n", a.store.Articles.Focused().Slug)
	return nil
}

// Delete removes an article remotely. The next List re-fetches the page, so
// no local pruning happens here.
func (a *App) Delete(ctx context.Context, slug string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.store.Articles.Delete(ctx, slug); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s\n", slug)
	return nil
}

// Favorite toggles the favorite mark on an article.
func (a *App) Favorite(ctx context.Context, slug string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.store.Articles.ToggleFavorite(ctx, slug); err != nil {
		a.reportError(err)
		return err
	}

	art := a.store.Articles.Focused()
	if art.Favorited {
		fmt.Fprintf(a.out, "Favorited %s (♥ %d)\n", art.Slug, art.FavoritesCount)
	} else {
		fmt.Fprintf(a.out, "Unfavorited %s (♥ %d)\n", art.Slug, art.FavoritesCount)
	}
	return nil
}

// promptDraft collects article fields interactively. Defaults (for edits)
// survive empty answers.
func (a *App) promptDraft(defaults api.ArticleDraft) (api.ArticleDraft, error) {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return defaults, err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return defaults, err
	}
	tags, err := getSimpleText(a.reader, "Tags (comma separated)", a.out)
	if err != nil {
		return defaults, err
	}
	body, err := GetMultiline(a.reader, "Body", a.out)
	if err != nil {
		return defaults, err
	}

	draft := defaults
	if title != "" {
		draft.Title = title
	}
	if description != "" {
		draft.Description = description
	}
	if body != "" {
		draft.Body = body
	}
	if tags != "" {
		var list []string
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				list = append(list, tag)
			}
		}
		draft.TagList = list
	}
	return draft, nil
}
