package controllers

import "github.com/envelope-zero/savings-goals/internal/store"

// Controller holds the dependencies of all request handlers.
type Controller struct {
	Store store.Store
}
