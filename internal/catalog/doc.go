// Package catalog holds the fixed list of party items users choose from.
// The list is built once at startup and handed out as copies.
package catalog
