package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskhub/taskhub/database"
	"taskhub/taskhub/models"
	"taskhub/taskhub/services"
)

func RegisterUserRoutes(router *gin.Engine, db *database.Database, userService services.UserServiceInterface) {
	group := router.Group("/users")
	{
		group.GET("/", func(c *gin.Context) { GetUsers(c, db, userService) })
		group.POST("/", func(c *gin.Context) { CreateUser(c, db, userService) })

		group.GET("/:id", func(c *gin.Context) { GetUserById(c, db, userService) })
		group.GET("/:id/tasks", func(c *gin.Context) { GetUserTasks(c, db, userService) })
	}
}

// parseID rejects non-integer path ids before they reach the services.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

func renderValidationError(c *gin.Context, vErr *services.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation failed",
		"fields": vErr.Fields,
	})
}

func CreateUser(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	var input models.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := userService.CreateUser(db, input)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			renderValidationError(c, vErr)
		case errors.Is(err, services.ErrEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

func GetUserById(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := userService.GetUserById(db, id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func GetUsers(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultUserLimit)))
	if err != nil {
		limit = services.DefaultUserLimit
	}

	users, err := userService.GetUsers(db, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func GetUserTasks(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tasks, err := userService.GetUserTasks(db, id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}
