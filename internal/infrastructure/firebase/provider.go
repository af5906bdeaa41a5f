package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/tu-usuario/tienda-api/internal/application/ports"
	"github.com/tu-usuario/tienda-api/pkg/config"
	"google.golang.org/api/option"
)

var _ ports.IdentityProvider = (*Provider)(nil)

// Provider adaptador del puerto IdentityProvider sobre Firebase Admin SDK.
type Provider struct {
	client *fbauth.Client
}

// NewProvider inicializa el Admin SDK con el service account configurado.
func NewProvider(ctx context.Context, cfg config.FirebaseConfig) (*Provider, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("inicializar firebase: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &Provider{client: client}, nil
}

// VerifyToken valida el ID token y devuelve el UID estable y los claims verificados.
func (p *Provider) VerifyToken(ctx context.Context, idToken string) (*ports.TokenClaims, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verificar token: %w", err)
	}
	return &ports.TokenClaims{UID: token.UID, Claims: token.Claims}, nil
}

// CreateUser crea la cuenta en el proveedor; la credencial vive allí, no localmente.
func (p *Provider) CreateUser(ctx context.Context, email, password, displayName string) (*ports.ExternalIdentity, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("crear usuario firebase: %w", err)
	}
	return &ports.ExternalIdentity{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}

// UpdateUser refleja cambios de email/nombre en el proveedor.
func (p *Provider) UpdateUser(ctx context.Context, uid, email, displayName string) error {
	params := &fbauth.UserToUpdate{}
	if email != "" {
		params = params.Email(email)
	}
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	if _, err := p.client.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("actualizar usuario firebase: %w", err)
	}
	return nil
}

// DeleteUser elimina la cuenta del proveedor.
func (p *Provider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("eliminar usuario firebase: %w", err)
	}
	return nil
}
