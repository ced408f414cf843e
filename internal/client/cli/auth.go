package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/coderefine/internal/common"
)

func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, userName, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return
	}

	log.Println("Registration successful, you can now login")
}

func (a *App) Login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, userName, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	a.userName = userName
	a.setMode(ModeOnline)
	log.Println("Login successful")
}

func (a *App) Logout(ctx context.Context) {
	a.api.Logout()
	a.userName = ""
	log.Println("Logged out")
}
