package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	productsvc "github.com/ranashahzaibf22/zero-limit/internal/service/product"
)

func listProductsHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := products.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to list products")
			return
		}
		respondData(c, http.StatusOK, items)
	}
}

func getProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusNotFound, "product not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to load product")
			return
		}
		respondData(c, http.StatusOK, product)
	}
}

func upsertProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.UpsertInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		product, err := products.Upsert(c.Request.Context(), in)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondData(c, http.StatusOK, product)
	}
}

func deleteProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if isNotFound(err) {
				respondError(c, http.StatusNotFound, "product not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to delete product")
			return
		}
		respondMessage(c, http.StatusOK, nil, "product deleted")
	}
}
