package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound is returned when a user id or email does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on any login failure. It never
	// distinguishes an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is an account that can own a session.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// UserStore is the persistence contract the gate depends on.
type UserStore interface {
	FindByID(ctx context.Context, idHex string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// UserRepo persists users in the "users" collection.
type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection("users")}
}

// EnsureIndexes creates the unique email index.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// Insert creates a new user, assigning its id.
func (r *UserRepo) Insert(ctx context.Context, u *User) error {
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// EnsureUser inserts a user with the given email and password hash unless one
// already exists. It reports whether a new user was created.
func (r *UserRepo) EnsureUser(ctx context.Context, email, passwordHash string) (bool, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"_id":           primitive.NewObjectID(),
		"email":         email,
		"password_hash": passwordHash,
		"created_at":    time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("ensure user %s: %w", email, err)
	}
	return res.UpsertedCount > 0, nil
}

// FindByID retrieves a user by hex id. A malformed id resolves to no user.
func (r *UserRepo) FindByID(ctx context.Context, idHex string) (*User, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user User
	err = r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", idHex, err)
	}
	return &user, nil
}

// FindByEmail retrieves a user by email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
