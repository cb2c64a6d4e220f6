package handlers

import (
	"net/http"
	"strconv"

	"gameshelf/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.ToGameResponses(games))
}

func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	game, err := h.gameService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.ToGameResponse(game))
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req services.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := h.gameService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, services.ToGameResponse(game))
}

func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	var req services.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := h.gameService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.ToGameResponse(game))
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GameHandler) SearchGames(c *gin.Context) {
	filters := services.SearchFilters{
		Name:   c.Query("name"),
		System: c.Query("system"),
	}

	fields := make(map[string]string)
	if raw, present := c.GetQuery("owned"); present {
		owned, err := strconv.ParseBool(raw)
		if err != nil {
			fields["owned"] = "owned must be a boolean"
		} else {
			filters.Owned = &owned
		}
	}
	if raw, present := c.GetQuery("hasBackup"); present {
		hasBackup, err := strconv.ParseBool(raw)
		if err != nil {
			fields["hasBackup"] = "hasBackup must be a boolean"
		} else {
			filters.HasBackup = &hasBackup
		}
	}
	if len(fields) > 0 {
		respondValidationError(c, &services.ValidationError{Fields: fields})
		return
	}

	games, err := h.gameService.Search(c.Request.Context(), &filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.ToGameResponses(games))
}

func parseGameID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid game id")
		return 0, false
	}
	return uint(id), true
}
