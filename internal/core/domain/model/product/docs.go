// Package product holds the rental catalog: products with daily prices and stock,
// and the categories they are filed under.
package product
