// Package x11 implements the window backend for X11 desktops using EWMH and
// ICCCM properties. It registers itself as the "x11" backend on linux and is
// empty elsewhere.
package x11
