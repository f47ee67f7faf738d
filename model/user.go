package model

import "time"

type User struct {
	UserID           string    `bson:"_id" json:"id"`
	FullName         string    `bson:"full_name" json:"fullName"`
	Email            string    `bson:"email" json:"email"`
	Password         string    `bson:"password" json:"-"` // argon2id salt$hash, never serialized
	TwoFactorSecret  string    `bson:"two_factor_secret,omitempty" json:"-"`
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"-"`
	CreatedOn        time.Time `bson:"created_on" json:"createdOn"`
}
