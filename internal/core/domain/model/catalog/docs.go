// Package catalog holds what the kitchen offers: the weekly patient menu,
// keyed by day, diet and meal type, and the flat list of priced employee
// menus. Editing the catalog never touches orders already placed.
package catalog
