// Package web serves the landing and echo views as server-rendered HTML.
//
// Pages are full documents for plain navigations and body fragments for htmx
// requests; echo updates swap only the greeting.
package web
