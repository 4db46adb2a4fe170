package routes

import "fmt"

const Products = "/products"

func Product(productID int64) string {
	return fmt.Sprintf("/products/%d", productID)
}

func VendorProducts(vendorID int64) string {
	return fmt.Sprintf("/products/vendor/%d", vendorID)
}

func VendorOutOfStock(vendorID int64) string {
	return fmt.Sprintf("/products/vendor/%d/outofstock", vendorID)
}
