package gameapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/lucks07/DAA-Game-Signpost/api/identity"
	"github.com/lucks07/DAA-Game-Signpost/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	defaultTopCount   = 10
	feedWriteDeadline = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// MatchController manages match operations.
type MatchController struct {
	matchManager i.MatchSessionManager
	leaderboard  i.Leaderboard
}

// NewMatchController initializes a MatchController.
func NewMatchController(mm i.MatchSessionManager, lb i.Leaderboard) (*MatchController, error) {
	return &MatchController{
		matchManager: mm,
		leaderboard:  lb,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MatchController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", mc.top)
}

// RegisterProtected registers protected routes.
func (mc *MatchController) RegisterProtected(route *gin.RouterGroup) {
	match := route.Group("/match")
	{
		match.POST("/", mc.create)
		match.GET("/:ID", mc.view)
		match.POST("/:ID/move", mc.move)
		match.POST("/:ID/restart", mc.restart)
		match.GET("/:ID/feed", mc.feed)
	}
}

// create starts a fresh match for the authenticated player.
func (mc *MatchController) create(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unknown player"})
		return
	}

	view, err := mc.matchManager.CreateMatch(playerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating match"})
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

// view returns the current projection of a match.
func (mc *MatchController) view(ctx *gin.Context) {
	matchID, err := matchID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	view, err := mc.matchManager.View(matchID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// move attempts a human move. A rejected move is a normal response, not
// an HTTP error.
func (mc *MatchController) move(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unknown player"})
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, view, err := mc.matchManager.PlayerMove(playerID, request.Target)
	if err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	response := &MoveResponse{
		Accepted: event.Accepted,
		Correct:  event.Correct,
		Match:    *view,
	}
	ctx.JSON(http.StatusOK, response)
}

// restart rebuilds the player's match on a fresh board.
func (mc *MatchController) restart(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unknown player"})
		return
	}

	view, err := mc.matchManager.Restart(playerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// feed upgrades the connection and streams match events until the match
// ends or the client goes away.
func (mc *MatchController) feed(ctx *gin.Context) {
	matchID, err := matchID(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	events, cancel, err := mc.matchManager.Subscribe(matchID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		cancel()
		return
	}
	defer func() {
		cancel()
		_ = conn.Close()
	}()

	for event := range events {
		_ = conn.SetWriteDeadline(time.Now().Add(feedWriteDeadline))
		if err := conn.WriteJSON(event); err != nil {
			return
		}
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match ended"))
}

// top returns the best ranked players.
func (mc *MatchController) top(ctx *gin.Context) {
	count := int64(defaultTopCount)
	if raw := ctx.Query("count"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
			return
		}
		count = parsed
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	standings, err := mc.leaderboard.Top(timeoutCtx, count)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	ctx.JSON(http.StatusOK, &LeaderboardResponse{Standings: standings})
}

// matchID parses the :ID route parameter.
func matchID(ctx *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params.ByName("ID"))
}
