package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "member registered successfully"
	MessageSuccessLogin         = "login success"
	MessageSuccessGetMe         = "success get profile"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessAddFriend     = "friend added successfully"
	MessageSuccessRemoveFriend  = "friend removed from your friend list"
	MessageSuccessGetFriends    = "success get friend list"
	MessageFriendNotInList      = "this member was not in your friend list"

	MessageFailedRegister      = "failed to register member"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetMe         = "failed to get profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedAddFriend     = "failed to add friend"
	MessageFailedRemoveFriend  = "failed to remove friend"
	MessageFailedGetFriends    = "failed to get friend list"

	ErrDuplicateUsername   = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrMemberNotFound      = errors.New("member not found")
	ErrWrongFormerPassword = errors.New("former password does not match")
	ErrPasswordMismatch    = errors.New("new password and confirmation do not match")
	ErrFriendNotFound      = errors.New("no member found with this username")
	ErrAlreadyFriend       = errors.New("member is already in your friend list")
	ErrSelfFriend          = errors.New("cannot add yourself as a friend")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=100"`
		Email    string `json:"email" validate:"omitempty,email"`
		Password string `json:"password" validate:"required,min=6,max=60"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}

	UpdateProfileRequest struct {
		NewUsername        string `json:"new_username" validate:"omitempty,min=3,max=100"`
		FormerPassword     string `json:"former_password" validate:"required"`
		NewPassword        string `json:"new_password" validate:"omitempty,min=6,max=60"`
		ConfirmNewPassword string `json:"confirm_new_password" validate:"omitempty"`
	}

	MemberResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		CreatedAt time.Time `json:"created_at"`
	}

	AddFriendRequest struct {
		Username string `json:"username" validate:"required"`
	}

	RemoveFriendRequest struct {
		Username string `json:"username" validate:"required"`
	}

	FriendResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}

	RemoveFriendResponse struct {
		Removed bool   `json:"removed"`
		Message string `json:"message"`
	}
)
