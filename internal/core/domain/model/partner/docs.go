// Package partner models the catalogue of restaurants, markets and takeaways the
// customer orders from, with their menus.
package partner
