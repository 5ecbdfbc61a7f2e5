package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

type AuthHandler struct {
	Store    sessions.Store
	Usuarios UsuarioStore
	Log      *zap.Logger
}

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// Login autentica o lojista e grava o ID na sessão.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		erroValidacao(c, "Informe e-mail e senha.")
		return
	}

	usuario, ok, err := h.Usuarios.BuscarUsuarioPorEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.Log.Error("erro ao buscar usuário", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ocorreu um erro interno. Tente novamente."})
		return
	}
	if !ok || bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail ou senha inválidos."})
		return
	}

	session, _ := h.Store.Get(c.Request, SessionName)
	session.Values["userID"] = usuario.ID
	session.Values["userName"] = usuario.Nome
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.Log.Error("erro ao salvar sessão de login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao iniciar a sessão. Tente novamente."})
		return
	}

	h.Log.Info("login realizado", zap.Uint("user_id", usuario.ID), zap.String("tipo", usuario.Tipo))
	c.JSON(http.StatusOK, gin.H{"success": true, "nome": usuario.Nome, "tipo": usuario.Tipo})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, SessionName)
	delete(session.Values, "userID")
	delete(session.Values, "userName")
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.Log.Error("erro ao salvar sessão de logout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao fazer logout."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthRequired carrega o usuário da sessão em c ("user") ou responde 401.
func (h *AuthHandler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := h.Store.Get(c.Request, SessionName)
		userID, ok := session.Values["userID"].(uint)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Autenticação necessária."})
			return
		}

		user, found, err := h.Usuarios.BuscarUsuario(c.Request.Context(), userID)
		if err != nil {
			h.Log.Error("erro ao carregar usuário da sessão", zap.Uint("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Ocorreu um erro interno."})
			return
		}
		if !found {
			h.Log.Warn("usuário da sessão não existe mais; forçando logout", zap.Uint("user_id", userID))
			delete(session.Values, "userID")
			delete(session.Values, "userName")
			session.Options.MaxAge = -1
			_ = session.Save(c.Request, c.Writer)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Autenticação necessária."})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RoleRequired verifica se o usuário carregado por AuthRequired tem o papel exigido.
func (h *AuthHandler) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userData, exists := c.Get("user")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Autenticação necessária."})
			return
		}

		user := userData.(model.Usuario)
		if user.Tipo != requiredRole {
			h.Log.Warn("acesso negado",
				zap.Uint("user_id", user.ID),
				zap.String("role_requerido", requiredRole),
				zap.String("role_usuario", user.Tipo))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acesso negado."})
			return
		}
		c.Next()
	}
}
