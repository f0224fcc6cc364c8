package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/notifier"
	"github.com/uguryukselwork/quickserve/settings"
	"github.com/uguryukselwork/quickserve/utils"
)

type SettingsController struct {
	Settings *settings.Store
	Engine   *notifier.Engine
}

func NewSettingsController(cfg *settings.Store, engine *notifier.Engine) *SettingsController {
	return &SettingsController{Settings: cfg, Engine: engine}
}

// GetSettings -> current notification preferences
func (sc *SettingsController) GetSettings(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff settings", sc.Settings.Get())
}

// UpdateSettings -> replace preferences; invalid values are normalized
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var body models.StaffSettings
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	saved := sc.Settings.Update(body)
	utils.RespondJSON(c, http.StatusOK, "Ayarlar güncellendi", saved)
}

// PreviewSound -> play a sound profile once, ignoring the mute switch
func (sc *SettingsController) PreviewSound(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var body struct {
		SoundType string `json:"sound_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	alert := sc.Engine.Preview(body.SoundType)
	utils.RespondJSON(c, http.StatusOK, "Preview sent", alert)
}
