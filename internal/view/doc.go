// Package view holds the host-independent views served by renderdemo.
//
// A view is an owned state object with a pure render function. Hosts decide
// how the rendered output reaches the user: the web host turns it into HTML on
// the server, the terminal host draws it in-process. Hosts inject the two
// capabilities a view needs from its surroundings: a Navigator for address
// changes and an Invalidator that schedules the next render pass.
package view
