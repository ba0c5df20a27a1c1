// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "parcel/internal/delivery/context"
	"parcel/internal/domain/entity"
	domainerrors "parcel/internal/domain/errors"
	"parcel/internal/domain/repository"
	"parcel/internal/domain/service"
	"parcel/internal/usecase"
	"parcel/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	guard

	hasher       service.PasswordHasher
	tokenService service.TokenService
	emailSender  service.EmailSender
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PackageRepo  repository.PackageRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	EmailSender  service.EmailSender
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		guard: guard{
			userRepo:    params.UserRepo,
			packageRepo: params.PackageRepo,
		},
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		emailSender:  params.EmailSender,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) notify(ctx context.Context, input service.SendInput) func() error {
	return func() error {
		_, err := srv.emailSender.Send(ctx, input)

		return errors.Wrap(err, "failed to send notification")
	}
}

// Register creates an account of any role and signs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", input.Email))

	if !input.Role.IsValid() {
		return nil, domainerrors.InvalidFormat("role")
	}
	if !entity.IsValidCPF(input.CPF) {
		return nil, domainerrors.InvalidFormat("cpf")
	}
	cpf := entity.OnlyDigits(input.CPF)

	var (
		sameEmail, sameCPF       *entity.User
		sameEmailErr, sameCPFErr error
	)

	lookups := util.NewBatch(srv.log(ctx))
	lookups.Go(func() error {
		sameEmail, sameEmailErr = srv.userRepo.FindByEmail(ctx, input.Email)

		return nil
	})
	lookups.Go(func() error {
		sameCPF, sameCPFErr = srv.userRepo.FindByCPF(ctx, cpf)

		return nil
	})
	_ = lookups.Wait()

	if err := lookupError(sameEmailErr); err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if err := lookupError(sameCPFErr); err != nil {
		return nil, errors.Wrap(err, "failed to find user by cpf")
	}
	if sameEmail != nil {
		return nil, domainerrors.UserAlreadyExists(input.Email)
	}
	if sameCPF != nil {
		return nil, domainerrors.UserAlreadyExists(cpf)
	}

	user := &entity.User{
		ID:        uuid.New(),
		Name:      input.Name,
		CPF:       cpf,
		Email:     input.Email,
		Role:      input.Role,
		Location:  input.Location,
		CreatedAt: time.Now(),
	}

	var admin *entity.User
	if input.Role == entity.RoleDeliveryman {
		var err error
		admin, err = srv.findAdmin(ctx, input.AdminID)
		if err != nil {
			return nil, err
		}
		user.AdminID = &admin.ID
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}
	user.Password = hashed

	batch := util.NewBatch(srv.log(ctx))
	batch.Go(func() error {
		if err := srv.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.UserAlreadyExists(user.Email)
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	batch.GoBestEffort("welcome", srv.notify(ctx, service.SendInput{
		Emails:  []string{user.Email},
		Title:   "Account created",
		Content: "You are now part of our team.",
	}))
	if admin != nil {
		batch.GoBestEffort("notify admin", srv.notify(ctx, service.SendInput{
			Emails:  []string{admin.Email},
			Title:   "New user registered",
			Content: fmt.Sprintf("You registered a new user: %s.", user.Email),
			AdminID: &admin.ID,
		}))
	}
	if err := batch.Wait(); err != nil {
		srv.log(ctx).Error("Failed to register user", slog.String("email", user.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Encrypt(accessClaims(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", user.Role), slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// Authenticate verifies the credentials of an account identified by CPF or e-mail.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthOutput, error) {
	user, err := srv.findByIdentifier(ctx, input.CPF, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.NotFound("user")
	}

	if !srv.hasher.Compare(input.Password, user.Password) {
		srv.log(ctx).Warn("Authentication failed: password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.WrongCredentials()
	}

	token, err := srv.tokenService.Encrypt(accessClaims(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// ChangePassword replaces the password of an account identified by CPF or e-mail.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if input.CPF == "" && input.Email == "" {
		return domainerrors.ParamsNotProvided("email or cpf")
	}

	user, err := srv.findByIdentifier(ctx, input.CPF, input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domainerrors.NotFound("user")
	}

	if user.IsDeliveryman() {
		if err := srv.validateAdmin(ctx, input.AdminID, user); err != nil {
			return err
		}
	} else if input.RequesterID != nil && *input.RequesterID != user.ID {
		return domainerrors.NotAllowed()
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if _, err := srv.userRepo.Update(ctx, user.ID, repository.UserUpdate{Password: &hashed}); err != nil {
		return srv.updateError(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

// ChangeLocation moves a user. Delivery personnel can only be moved by their admin.
func (srv *userService) ChangeLocation(ctx context.Context, input *usecase.ChangeLocationInput) error {
	if !input.Location.IsValid() {
		return domainerrors.InvalidFormat("location")
	}

	user, err := srv.findUser(ctx, input.UserID, "user")
	if err != nil {
		return err
	}

	if user.IsDeliveryman() {
		if err := srv.validateAdmin(ctx, input.AdminID, user); err != nil {
			return err
		}
	} else if err := selfOnly(input.AdminID, user); err != nil {
		return err
	}

	location := input.Location
	if _, err := srv.userRepo.Update(ctx, user.ID, repository.UserUpdate{Location: &location}); err != nil {
		return srv.updateError(err, "failed to update location")
	}

	return nil
}

// Delete removes an account. A delivery person is checked against its admin before anything is sent.
func (srv *userService) Delete(ctx context.Context, input *usecase.DeleteUserInput) error {
	user, err := srv.findUser(ctx, input.UserID, "user")
	if err != nil {
		return err
	}

	var admin *entity.User
	if user.IsDeliveryman() {
		admin, err = srv.findAdmin(ctx, input.AdminID)
		if err != nil {
			return err
		}
		if err := ownedBy(admin, user); err != nil {
			return err
		}
	} else if err := selfOnly(input.AdminID, user); err != nil {
		return err
	}

	batch := util.NewBatch(srv.log(ctx))
	batch.Go(func() error {
		if err := srv.userRepo.Delete(ctx, user.ID); err != nil {
			return srv.updateError(err, "failed to delete user")
		}

		return nil
	})
	batch.GoBestEffort("goodbye", srv.notify(ctx, service.SendInput{
		Emails:  []string{user.Email},
		Title:   "Goodbye",
		Content: "Your account was closed by an admin or by yourself.",
	}))
	if admin != nil {
		batch.GoBestEffort("notify admin", srv.notify(ctx, service.SendInput{
			Emails:  []string{admin.Email},
			Title:   "User deleted",
			Content: fmt.Sprintf("You deleted the user: %s.", user.Email),
			AdminID: &admin.ID,
		}))
	}
	if err := batch.Wait(); err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return nil
}

// FetchByAdminID lists the delivery personnel of an admin.
func (srv *userService) FetchByAdminID(ctx context.Context, input *usecase.FetchByAdminInput) (*repository.Page[*entity.User], error) {
	admin, err := srv.findAdmin(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}

	page, err := srv.userRepo.ListByAdminID(ctx, admin.ID, input.Pagination.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by admin")
	}

	return page, nil
}

// findByIdentifier looks a user up by CPF, falling back to e-mail. It returns
// nil without error when nothing matches or neither identifier is given.
func (srv *userService) findByIdentifier(ctx context.Context, cpf, email string) (*entity.User, error) {
	var (
		user *entity.User
		err  error
	)

	switch {
	case cpf != "":
		user, err = srv.userRepo.FindByCPF(ctx, entity.OnlyDigits(cpf))
	case email != "":
		user, err = srv.userRepo.FindByEmail(ctx, email)
	default:
		return nil, nil
	}

	if err := lookupError(err); err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) updateError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.NotFound("user")
	}

	return errors.Wrap(err, message)
}

// lookupError drops the not-found sentinel of an existence check.
func lookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}

	return err
}
