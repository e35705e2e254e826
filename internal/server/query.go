package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

// selection reads start, end, keywords and locations from the query string.
// List parameters may be repeated or comma separated. On a bad value the
// response is written and ok is false.
func (s *Server) selection(c *gin.Context) (sel model.Selection, ok bool) {
	from, to, err := model.DayRange(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must use YYYY-MM-DD"})
		return model.Selection{}, false
	}
	return model.Selection{
		Start:     from,
		End:       to,
		Keywords:  listQuery(c, "keywords"),
		Locations: listQuery(c, "locations"),
	}, true
}

func listQuery(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func column(c *gin.Context) (model.Column, bool) {
	col, ok := model.ParseColumn(c.DefaultQuery("column", string(model.Keywords)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown column"})
	}
	return col, ok
}

func intQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": key + " must be a non-negative integer"})
		return 0, false
	}
	return n, true
}
