package model

import "context"

// Catalog is the read surface the views render from, plus the single write
// they issue.
type Catalog interface {
	ListBooks(ctx context.Context, page int) (*List[Book], error)
	GetBook(ctx context.Context, id string) (*BookDetail, error)
	GetPage(ctx context.Context, id string) (*Page, error)
	ListCharacters(ctx context.Context, page int) (*List[Character], error)
	SetBookStarred(ctx context.Context, id string, starred bool) (*Book, error)
}
