// Package web hosts the browser-facing shell service.
//
// Every page response goes through the shell composer and carries the
// process-wide cache policy. The per-render preference store is distributed
// through the render context and reconciled with the durable theme cookie
// once the page lifecycle crosses the interactive barrier.
package web
