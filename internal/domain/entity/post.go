package entity

import (
	"fmt"
	"time"
)

// Post represents a blog post.
// Title must carry a marker phrase and Category is always Fiction or Non-Fiction.
type Post struct {
	ID        int64
	Title     string
	Content   *string
	Summary   *string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost builds a Post after running every field validator.
func NewPost(title string, content, summary *string, category string) (*Post, error) {
	p := &Post{}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetContent(content); err != nil {
		return nil, err
	}
	if err := p.SetSummary(summary); err != nil {
		return nil, err
	}
	if err := p.SetCategory(category); err != nil {
		return nil, err
	}
	return p, nil
}

// SetTitle assigns title if it passes ValidatePostTitle.
// The post is left unchanged on error.
func (p *Post) SetTitle(title string) error {
	if err := ValidatePostTitle(title); err != nil {
		return err
	}
	p.Title = title
	return nil
}

// SetContent assigns content if it passes ValidatePostContent. nil clears the body.
func (p *Post) SetContent(content *string) error {
	if err := ValidatePostContent(content); err != nil {
		return err
	}
	p.Content = cloneString(content)
	return nil
}

// SetSummary assigns summary if it passes ValidatePostSummary. nil clears the summary.
func (p *Post) SetSummary(summary *string) error {
	if err := ValidatePostSummary(summary); err != nil {
		return err
	}
	p.Summary = cloneString(summary)
	return nil
}

// SetCategory assigns category if it passes ValidatePostCategory.
func (p *Post) SetCategory(category string) error {
	if err := ValidatePostCategory(category); err != nil {
		return err
	}
	p.Category = category
	return nil
}

// Validate re-runs the field validators against the current values.
func (p *Post) Validate() error {
	if err := ValidatePostTitle(p.Title); err != nil {
		return err
	}
	if err := ValidatePostContent(p.Content); err != nil {
		return err
	}
	if err := ValidatePostSummary(p.Summary); err != nil {
		return err
	}
	return ValidatePostCategory(p.Category)
}

func (p *Post) String() string {
	return fmt.Sprintf("Post(id=%d, title=%s, content=%s, summary=%s)",
		p.ID, p.Title, formatOptional(p.Content), formatOptional(p.Summary))
}
