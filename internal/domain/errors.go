package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound     = errors.New("ressource introuvable")
	ErrInvalidInput = errors.New("entrée invalide")
	ErrRenderFailed = errors.New("échec du rendu PDF")
	ErrEmailFailed  = errors.New("échec de l'envoi de l'email")
)
