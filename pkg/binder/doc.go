// Package binder fills request structs from form bodies, JSON bodies, the
// URL query and path parameters, driven by `form`, `json`, `query` and
// `path` struct tags.
//
// Binders compose: handler.Wrap runs them in order and skips any that
// return ErrBinderNotApplicable, so one request struct can accept both a
// classic form post and a DataStar JSON post.
package binder
